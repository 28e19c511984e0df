package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported backends.
const (
	WhisperBackendCLI      = "cli"
	WhisperBackendBindings = "bindings"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	LLM     LLMConfig     `yaml:"llm"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type WhisperConfig struct {
	Backend    string `yaml:"backend"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type LLMConfig struct {
	Provider     string  `yaml:"provider"`
	BaseURL      string  `yaml:"base_url"`
	APIKey       string  `yaml:"api_key"`
	Model        string  `yaml:"model"`
	MaxNewTokens int     `yaml:"max_new_tokens"`
	Temperature  float64 `yaml:"temperature"`
	TopK         int     `yaml:"top_k"`
	TopP         float64 `yaml:"top_p"`
	// Sampling is a pointer so an explicit false survives defaulting.
	Sampling *bool `yaml:"sampling"`
}

type PathsConfig struct {
	Transcriptions string `yaml:"transcriptions"`
	Temp           string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	// defaults never fail validation
	_ = cfg.Validate()
	return cfg
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	switch c.Whisper.Backend {
	case "":
		c.Whisper.Backend = WhisperBackendCLI
	case WhisperBackendCLI, WhisperBackendBindings:
	default:
		return fmt.Errorf("whisper.backend must be %q or %q", WhisperBackendCLI, WhisperBackendBindings)
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = ProviderOpenAI
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
	}

	if c.LLM.Provider == ProviderGemini && c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required for provider %q", ProviderGemini)
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}
	if c.LLM.MaxNewTokens < 0 {
		return fmt.Errorf("llm.max_new_tokens must not be negative")
	}
	if c.LLM.TopP < 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("llm.top_p must be within [0, 1]")
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = defaultModelPath()
	}
	c.Whisper.ModelPath = expandHome(c.Whisper.ModelPath)
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}

	if c.LLM.BaseURL == "" && c.LLM.Provider == ProviderOpenAI {
		c.LLM.BaseURL = "http://localhost:8080/v1"
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == ProviderGemini {
			c.LLM.Model = "gemini-2.5-flash"
		} else {
			c.LLM.Model = "local-model"
		}
	}
	if c.LLM.MaxNewTokens == 0 {
		c.LLM.MaxNewTokens = 512
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.8
	}
	if c.LLM.TopK == 0 {
		c.LLM.TopK = 50
	}
	if c.LLM.TopP == 0 {
		c.LLM.TopP = 0.95
	}
	if c.LLM.Sampling == nil {
		enabled := true
		c.LLM.Sampling = &enabled
	}

	if c.Paths.Transcriptions == "" {
		c.Paths.Transcriptions = defaultTranscriptionsDir()
	}
	c.Paths.Transcriptions = expandHome(c.Paths.Transcriptions)
	c.Paths.Temp = expandHome(c.Paths.Temp)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}

// defaultTranscriptionsDir places the cache beside the program.
func defaultTranscriptionsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "transcriptions"
	}
	return filepath.Join(filepath.Dir(exe), "transcriptions")
}

func defaultModelPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("models", "ggml-base.bin")
	}
	return filepath.Join(home, ".whisper", "models", "ggml-base.bin")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
