package config

import "time"

// ServerConfig represents the configuration for the HTTP frontend
type ServerConfig struct {
	Frontend        string
	ListenAddress   string
	Mode            string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// ClassifierConfig represents the configuration for the TF-IDF classifier
type ClassifierConfig struct {
	PositiveLabel string
	NegativeLabel string
	MaxIter       int
	Seed          int64
	C             float64
	LearningRate  float64
	Tolerance     float64
	TopN          int
}

// CorpusConfig represents the configuration for the training corpus source
type CorpusConfig struct {
	Type          string
	Path          string
	SQLitePath    string
	MySQLDSN      string
	Table         string
	AllowedLabels []string
}

// AudioConfig represents the configuration for audio ingestion
type AudioConfig struct {
	TempDir             string
	TranscodeExtensions []string
	TranscoderCommand   string
	TranscodeTimeout    time.Duration
}

// RecognizerConfig represents the configuration for speech recognition
type RecognizerConfig struct {
	Provider    string
	Timeout     time.Duration
	Language    string
	ExecCommand string
}

// LLMConfig represents the configuration for the LLM scorer provider
type LLMConfig struct {
	Provider string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI compatible endpoints
type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	ModelName          string
	TranscriptionModel string
	MaxTokens          int
	Temperature        float32
	TopP               float32
	MaxBodySize        int
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// durationOr parses a duration key, falling back when the value is invalid
func (c *Config) durationOr(key string, fallback time.Duration) time.Duration {
	d, err := c.GetDuration(key)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// GetServer returns the frontend configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		Frontend:        c.GetString("server.frontend"),
		ListenAddress:   c.GetString("server.listen_address"),
		Mode:            c.GetString("server.mode"),
		MaxUploadBytes:  c.GetInt64("server.max_upload_bytes"),
		ShutdownTimeout: c.durationOr("server.shutdown_timeout", 10*time.Second),
		AllowedOrigins:  c.GetStringSlice("server.cors.allowed_origins"),
	}
}

// GetClassifier returns the classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		PositiveLabel: c.GetString("classifier.positive_label"),
		NegativeLabel: c.GetString("classifier.negative_label"),
		MaxIter:       c.GetInt("classifier.max_iter"),
		Seed:          c.GetInt64("classifier.seed"),
		C:             c.GetFloat64("classifier.c"),
		LearningRate:  c.GetFloat64("classifier.learning_rate"),
		Tolerance:     c.GetFloat64("classifier.tolerance"),
		TopN:          c.GetInt("classifier.top_n"),
	}
}

// GetCorpus returns the training corpus configuration
func (c *Config) GetCorpus() CorpusConfig {
	return CorpusConfig{
		Type:          c.GetString("corpus.type"),
		Path:          c.GetString("corpus.path"),
		SQLitePath:    c.GetString("corpus.sqlite_path"),
		MySQLDSN:      c.GetString("corpus.mysql_dsn"),
		Table:         c.GetString("corpus.table"),
		AllowedLabels: c.GetStringSlice("corpus.allowed_labels"),
	}
}

// GetAudio returns the audio ingestion configuration
func (c *Config) GetAudio() AudioConfig {
	return AudioConfig{
		TempDir:             c.GetString("audio.temp_dir"),
		TranscodeExtensions: c.GetStringSlice("audio.transcode_extensions"),
		TranscoderCommand:   c.GetString("audio.transcoder_command"),
		TranscodeTimeout:    c.durationOr("audio.transcode_timeout", time.Minute),
	}
}

// GetRecognizer returns the speech recognition configuration
func (c *Config) GetRecognizer() RecognizerConfig {
	return RecognizerConfig{
		Provider:    c.GetString("recognizer.provider"),
		Timeout:     c.durationOr("recognizer.timeout", 45*time.Second),
		Language:    c.GetString("recognizer.language"),
		ExecCommand: c.GetString("recognizer.exec_command"),
	}
}

// GetLLM returns the LLM scorer configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider: c.GetString("llm.provider"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:             c.GetString("openai.api_key"),
		BaseURL:            c.GetString("openai.base_url"),
		ModelName:          c.GetString("openai.model_name"),
		TranscriptionModel: c.GetString("openai.transcription_model"),
		MaxTokens:          c.GetInt("openai.max_tokens"),
		Temperature:        float32(c.GetFloat64("openai.temperature")),
		TopP:               float32(c.GetFloat64("openai.top_p")),
		MaxBodySize:        c.GetInt("openai.max_body_size"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:      c.GetString("logging.level"),
		Format:     c.GetString("logging.format"),
		File:       c.GetString("logging.file"),
		MaxSizeMB:  c.GetInt("logging.max_size_mb"),
		MaxBackups: c.GetInt("logging.max_backups"),
		MaxAgeDays: c.GetInt("logging.max_age_days"),
	}
}
