package ai

// ModelPreset selects a generation temperature profile.
type ModelPreset string

const (
	PresetCreative ModelPreset = "creative"
	PresetPrecise  ModelPreset = "precise"
	PresetBalanced ModelPreset = "balanced"
)

// ModelConfig holds Gemini generation parameters.
type ModelConfig struct {
	Temperature      float32
	TopP             float32
	TopK             int
	MaxOutputTokens  int
	ResponseMimeType string
}

// OpenAIPresetConfig holds OpenAI generation parameters.
type OpenAIPresetConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// GenerateMetadata describes which provider and model produced a response.
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

// GenerateOptions holds per-call overrides.
type GenerateOptions struct {
	Model    string
	JSONMode bool
}

// GetPresetConfig returns the Gemini configuration for a preset.
func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetCreative:
		return ModelConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 2048,
		}
	case PresetPrecise:
		return ModelConfig{
			Temperature:     0.1,
			TopP:            0.9,
			TopK:            20,
			MaxOutputTokens: 1024,
		}
	case PresetBalanced:
		return ModelConfig{
			Temperature:     0.1,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		}
	default:
		return GetPresetConfig(PresetBalanced)
	}
}

// GetOpenAIPresetConfig returns the OpenAI configuration for a preset.
func GetOpenAIPresetConfig(preset ModelPreset) OpenAIPresetConfig {
	switch preset {
	case PresetCreative:
		return OpenAIPresetConfig{
			Temperature: 0.7,
			MaxTokens:   2048,
			TopP:        0.95,
		}
	case PresetPrecise:
		return OpenAIPresetConfig{
			Temperature: 0.1,
			MaxTokens:   1024,
			TopP:        0.9,
		}
	case PresetBalanced:
		return OpenAIPresetConfig{
			Temperature: 0.1,
			MaxTokens:   4096,
			TopP:        0.95,
		}
	default:
		return GetOpenAIPresetConfig(PresetBalanced)
	}
}
