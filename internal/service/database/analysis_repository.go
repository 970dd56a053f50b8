package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapu/creator-insight-go/internal/domain"
	"go.uber.org/zap"
)

// AnalysisRepository persists generated content together with its scores.
type AnalysisRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewAnalysisRepository(pg *PostgresService, logger *zap.Logger) *AnalysisRepository {
	return &AnalysisRepository{
		db:     pg.GetDB(),
		logger: logger,
	}
}

const analysisSchema = `
CREATE TABLE IF NOT EXISTS content_analyses (
	id         BIGSERIAL PRIMARY KEY,
	kind       TEXT NOT NULL,
	platform   TEXT NOT NULL,
	score      INT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_content_analyses_kind
	ON content_analyses (kind, platform, created_at DESC);
`

func (r *AnalysisRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, analysisSchema); err != nil {
		return fmt.Errorf("failed to create analysis schema: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) SaveCaption(ctx context.Context, caption *domain.GeneratedCaption) error {
	return r.save(ctx, "caption", caption.Platform, caption.Analysis.TotalScore, caption)
}

func (r *AnalysisRepository) SaveHashtagSet(ctx context.Context, set *domain.GeneratedHashtagSet) error {
	return r.save(ctx, "hashtag_set", set.Platform, set.Analysis.TotalScore, set)
}

func (r *AnalysisRepository) SaveSeoMeta(ctx context.Context, meta *domain.GeneratedSeoMeta) error {
	return r.save(ctx, "seo_meta", meta.Platform, meta.Analysis.Score, meta)
}

func (r *AnalysisRepository) save(ctx context.Context, kind string, platform domain.Platform, score int, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO content_analyses (kind, platform, score, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		kind, platform.String(), score, data, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to insert %s analysis: %w", kind, err)
	}

	r.logger.Debug("Content analysis saved",
		zap.String("kind", kind),
		zap.String("platform", platform.String()),
		zap.Int("score", score),
	)
	return nil
}
