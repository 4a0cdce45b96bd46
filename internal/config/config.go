package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/scamshield/")
	v.AddConfigPath("$HOME/.scamshield")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromFile creates a configuration instance from an explicit file path
func NewFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("SCAMSHIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// DefaultKeywords is the ordered suspicious-term list used by the keyword scorer
var DefaultKeywords = []string{
	"otp",
	"anydesk",
	"teamviewer",
	"urgent",
	"bank account",
	"password",
	"credit card",
	"cvv",
	"social security",
}

// DefaultTranscodeExtensions lists container/compressed formats that need
// conversion before recognition
var DefaultTranscodeExtensions = []string{
	".webm", ".mp3", ".ogg", ".oga", ".opus", ".m4a", ".mp4", ".aac", ".flac", ".amr", ".3gp",
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Frontend defaults
	v.SetDefault("server.frontend", "http")
	v.SetDefault("server.listen_address", "0.0.0.0:8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_upload_bytes", 25*1024*1024)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	// Analysis defaults
	v.SetDefault("analysis.scorer", "ml")

	// Keyword scorer defaults
	v.SetDefault("keywords.terms", DefaultKeywords)

	// Classifier defaults
	v.SetDefault("classifier.positive_label", "spam")
	v.SetDefault("classifier.negative_label", "legitimate")
	v.SetDefault("classifier.max_iter", 1000)
	v.SetDefault("classifier.seed", 42)
	v.SetDefault("classifier.c", 1.0)
	v.SetDefault("classifier.learning_rate", 0.5)
	v.SetDefault("classifier.tolerance", 1e-6)
	v.SetDefault("classifier.top_n", 3)

	// Corpus defaults
	v.SetDefault("corpus.type", "json")
	v.SetDefault("corpus.path", "./data/training_data.json")
	v.SetDefault("corpus.sqlite_path", "/data/corpus.db")
	v.SetDefault("corpus.mysql_dsn", "user:password@tcp(localhost:3306)/scamshield")
	v.SetDefault("corpus.table", "training_examples")
	v.SetDefault("corpus.allowed_labels", []string{"spam", "legitimate"})

	// Audio defaults
	v.SetDefault("audio.temp_dir", "")
	v.SetDefault("audio.transcode_extensions", DefaultTranscodeExtensions)
	v.SetDefault("audio.transcoder_command", "ffmpeg -hide_banner -loglevel error -nostdin -y -i {input} -ac 1 -ar 16000 -c:a pcm_s16le {output}")
	v.SetDefault("audio.transcode_timeout", "60s")

	// Recognizer defaults
	v.SetDefault("recognizer.provider", "openai")
	v.SetDefault("recognizer.timeout", "45s")
	v.SetDefault("recognizer.language", "en")
	v.SetDefault("recognizer.exec_command", "")

	// LLM scorer defaults
	v.SetDefault("llm.provider", "bedrock")

	// Bedrock defaults
	v.SetDefault("bedrock.region", "us-east-1")
	v.SetDefault("bedrock.model_id", "anthropic.claude-v2")
	v.SetDefault("bedrock.max_tokens", 1000)
	v.SetDefault("bedrock.temperature", 0.1)
	v.SetDefault("bedrock.top_p", 0.9)
	v.SetDefault("bedrock.max_body_size", 4096)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", "gemini-1.5-flash")
	v.SetDefault("gemini.max_tokens", 1000)
	v.SetDefault("gemini.temperature", 0.1)
	v.SetDefault("gemini.top_p", 0.9)
	v.SetDefault("gemini.max_body_size", 4096)

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model_name", "gpt-4o-mini")
	v.SetDefault("openai.transcription_model", "whisper-1")
	v.SetDefault("openai.max_tokens", 1000)
	v.SetDefault("openai.temperature", 0.1)
	v.SetDefault("openai.top_p", 0.9)
	v.SetDefault("openai.max_body_size", 4096)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt64 gets an int64 value from the configuration
func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// UnmarshalKey decodes a configuration subtree into out
func (c *Config) UnmarshalKey(key string, out interface{}) error {
	return c.v.UnmarshalKey(key, out)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
