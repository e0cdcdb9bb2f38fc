// Package config loads interviewer settings from file, environment and
// flags through viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/interviewer/internal/llm"
	"github.com/abhisek/interviewer/internal/session"
	"github.com/abhisek/interviewer/internal/similarity"
)

const (
	// EnvPrefix prefixes every environment override, e.g.
	// INTERVIEWER_SIMILARITY_MODE.
	EnvPrefix = "INTERVIEWER"

	// FileName is the config file looked up in the working directory.
	FileName = "interviewer.yaml"
)

// ErrInvalidConfig is returned when decoded settings fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full interviewer configuration.
type Config struct {
	// Bank is a question bank file. Empty uses the built-in bank.
	Bank string `mapstructure:"bank"`

	// Catalog is a resume skill catalog file. Empty uses the built-in one.
	Catalog string `mapstructure:"catalog"`

	Budget    int `mapstructure:"budget" validate:"gte=1"`
	MaxSkills int `mapstructure:"max-skills" validate:"gte=1"`

	Similarity similarity.Config `mapstructure:"similarity"`
	LLM        llm.Config        `mapstructure:"llm"`

	Debug bool `mapstructure:"debug"`
	JSON  bool `mapstructure:"json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Budget:     session.DefaultBudget,
		MaxSkills:  session.DefaultMaxSkills,
		Similarity: similarity.DefaultConfig(),
		LLM:        llm.DefaultConfig(),
	}
}

// NewViper returns a viper instance wired for INTERVIEWER_ environment
// overrides, with every known key defaulted so the overrides apply.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("bank", d.Bank)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("budget", d.Budget)
	v.SetDefault("max-skills", d.MaxSkills)
	v.SetDefault("debug", false)
	v.SetDefault("json", false)

	v.SetDefault("similarity.mode", d.Similarity.Mode)
	v.SetDefault("similarity.fallback", d.Similarity.Fallback)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.anthropic.api-key", "")
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.anthropic.base-url", "")
	v.SetDefault("llm.openai.api-key", "")
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base-url", "")
	v.SetDefault("llm.openai.embedding-model", d.LLM.OpenAI.EmbeddingModel)
	v.SetDefault("llm.gemini.api-key", "")
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.gemini.embedding-model", d.LLM.Gemini.EmbeddingModel)
	v.SetDefault("llm.openrouter.api-key", "")
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base-url", "")
	v.SetDefault("llm.retry.max-attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial-wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max-wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)
}

// ReadFile reads path into v, or interviewer.yaml from the working
// directory when path is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

var validate = validator.New()

// Load decodes and validates the settings held by v. When a model-backed
// similarity mode has no API key configured, the standard provider
// environment variables are probed.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Similarity.Mode != similarity.ModeLexical && !cfg.LLM.HasKey() {
		discovered, ok := llm.DiscoverConfig(cfg.LLM)
		if !ok {
			return nil, fmt.Errorf("%w: similarity mode %q: %v", ErrInvalidConfig, cfg.Similarity.Mode, cfg.LLM.Validate())
		}
		cfg.LLM = discovered
	}

	return &cfg, nil
}
