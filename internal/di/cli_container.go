package di

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/scamshield/internal/adapters/frontend"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/logging"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Pipeline flags
	Scorer      string
	Recognizer  string
	LLMProvider string

	// Corpus flags
	CorpusType string
	CorpusPath string

	// Provider flags
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string
	STTCommand    string

	// Input and output flags
	InputFile  string
	JSONOutput bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct. The
// first positional argument is used as the input file when -file is unset.
func ParseFlags(fs *flag.FlagSet, args []string) (*CLIFlags, error) {
	flags := &CLIFlags{}

	// Pipeline flags
	fs.StringVar(&flags.Scorer, "scorer", "", "Scorer (ml, keyword, llm)")
	fs.StringVar(&flags.Recognizer, "recognizer", "", "Speech recognizer (openai, gemini, exec)")
	fs.StringVar(&flags.LLMProvider, "llm-provider", "", "LLM provider for the llm scorer (bedrock, gemini, openai)")

	// Corpus flags
	fs.StringVar(&flags.CorpusType, "corpus-type", "", "Training corpus type (json, yaml, sqlite, mysql, memory)")
	fs.StringVar(&flags.CorpusPath, "corpus", "", "Training corpus file for json and yaml corpora")

	// Provider flags
	fs.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI compatible endpoints")
	fs.StringVar(&flags.OpenAIBaseURL, "openai-base-url", "", "Base URL for OpenAI compatible endpoints")
	fs.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	fs.StringVar(&flags.STTCommand, "stt-command", "", "Command for the exec recognizer")

	// Input and output flags
	fs.StringVar(&flags.InputFile, "file", "", "Audio file to analyze")
	fs.BoolVar(&flags.JSONOutput, "json", false, "Print the result as JSON")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging and print the transcription")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.InputFile == "" && fs.NArg() > 0 {
		flags.InputFile = fs.Arg(0)
	}
	if flags.InputFile == "" {
		return nil, fmt.Errorf("no audio file given")
	}
	return flags, nil
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application. Results are written to out.
func BuildCLIContainer(flags *CLIFlags, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		cfg, err := loadCLIConfig(flags)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Debug("Loaded configuration from file", zap.String("file", used))
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	if err := registerPipeline(container); err != nil {
		return nil, err
	}

	// Register CLI frontend
	if err := container.Provide(func(
		service *core.AnalysisService,
		logger *zap.Logger,
		flags *CLIFlags,
	) *frontend.CliFrontend {
		return frontend.NewCliFrontend(service, logger, out, flags.JSONOutput, flags.Verbose)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// loadCLIConfig reads the configuration file, if any, and applies the
// command line overrides on top of it
func loadCLIConfig(flags *CLIFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.ConfigFile != "" {
		cfg, err = config.NewFromFile(flags.ConfigFile)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		return nil, err
	}

	v := cfg.GetViper()
	overrides := map[string]string{
		"analysis.scorer":         flags.Scorer,
		"recognizer.provider":     flags.Recognizer,
		"llm.provider":            flags.LLMProvider,
		"corpus.type":             flags.CorpusType,
		"corpus.path":             flags.CorpusPath,
		"openai.api_key":          flags.OpenAIAPIKey,
		"openai.base_url":         flags.OpenAIBaseURL,
		"gemini.api_key":          flags.GeminiAPIKey,
		"recognizer.exec_command": flags.STTCommand,
	}
	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}
	v.Set("server.frontend", "cli")
	v.Set("cli.json", flags.JSONOutput)
	v.Set("cli.verbose", flags.Verbose)

	return cfg, nil
}
