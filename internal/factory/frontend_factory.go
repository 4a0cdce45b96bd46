package factory

import (
	"fmt"
	"os"

	"github.com/mikey/scamshield/internal/adapters/frontend"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates frontends based on configuration
type FrontendFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.AnalysisService
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(cfg *config.Config, logger *zap.Logger, service *core.AnalysisService) *FrontendFactory {
	return &FrontendFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateFrontend creates a frontend based on the configuration
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	frontendType := f.cfg.GetString("server.frontend")

	switch frontendType {
	case "http":
		return frontend.NewHTTPServer(f.service, f.cfg.GetServer(), f.logger), nil
	case "cli":
		return frontend.NewCliFrontend(
			f.service,
			f.logger,
			os.Stdout,
			f.cfg.GetBool("cli.json"),
			f.cfg.GetBool("cli.verbose"),
		), nil
	default:
		return nil, fmt.Errorf("unsupported frontend type: %s", frontendType)
	}
}
