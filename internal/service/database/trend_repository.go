package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kapu/creator-insight-go/internal/domain"
	"go.uber.org/zap"
)

// TrendRepository persists collection runs and their flagged outliers.
type TrendRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewTrendRepository(pg *PostgresService, logger *zap.Logger) *TrendRepository {
	return &TrendRepository{
		db:     pg.GetDB(),
		logger: logger,
	}
}

const trendSchema = `
CREATE TABLE IF NOT EXISTS trend_reports (
	id          BIGSERIAL PRIMARY KEY,
	channel_id  TEXT NOT NULL,
	report      JSONB NOT NULL,
	collected_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trend_reports_channel
	ON trend_reports (channel_id, collected_at DESC);

CREATE TABLE IF NOT EXISTS video_outliers (
	id           BIGSERIAL PRIMARY KEY,
	channel_id   TEXT NOT NULL,
	video_id     TEXT NOT NULL,
	outlier_type TEXT NOT NULL,
	outlier_score DOUBLE PRECISION NOT NULL,
	views_vs_baseline DOUBLE PRECISION NOT NULL,
	detected_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_video_outliers_channel
	ON video_outliers (channel_id, detected_at DESC);
`

// EnsureSchema creates the trend tables when they do not exist.
func (r *TrendRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, trendSchema); err != nil {
		return fmt.Errorf("failed to create trend schema: %w", err)
	}
	return nil
}

func (r *TrendRepository) SaveReport(ctx context.Context, report *domain.TrendReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal trend report: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO trend_reports (channel_id, report, collected_at) VALUES ($1, $2, $3)`,
		report.ChannelID, payload, report.CollectedAt,
	); err != nil {
		return fmt.Errorf("failed to insert trend report: %w", err)
	}

	for _, outlier := range report.Outliers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO video_outliers (channel_id, video_id, outlier_type, outlier_score, views_vs_baseline, detected_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			report.ChannelID, outlier.ID, outlier.OutlierType.String(),
			outlier.OutlierScore, outlier.ViewsVsBaseline, report.CollectedAt,
		); err != nil {
			return fmt.Errorf("failed to insert outlier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trend report: %w", err)
	}

	r.logger.Debug("Trend report saved",
		zap.String("channel", report.ChannelID),
		zap.Int("records", len(report.Records)),
		zap.Int("outliers", len(report.Outliers)),
	)
	return nil
}

// GetLatestReport returns the most recent report for a channel, nil when none.
func (r *TrendRepository) GetLatestReport(ctx context.Context, channelID string) (*domain.TrendReport, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT report FROM trend_reports WHERE channel_id = $1 ORDER BY collected_at DESC LIMIT 1`,
		channelID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest report: %w", err)
	}

	var report domain.TrendReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trend report: %w", err)
	}
	return &report, nil
}

// RecentOutliers lists the latest flagged videos across all channels.
func (r *TrendRepository) RecentOutliers(ctx context.Context, limit int) ([]domain.OutlierResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT video_id, outlier_type, outlier_score, views_vs_baseline
		 FROM video_outliers ORDER BY detected_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outliers: %w", err)
	}
	defer rows.Close()

	results := []domain.OutlierResult{}
	for rows.Next() {
		var res domain.OutlierResult
		var outlierType string
		if err := rows.Scan(&res.ID, &outlierType, &res.OutlierScore, &res.ViewsVsBaseline); err != nil {
			return nil, fmt.Errorf("failed to scan outlier row: %w", err)
		}
		res.OutlierType = domain.OutlierType(outlierType)
		results = append(results, res)
	}
	return results, rows.Err()
}
