package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mikey/scamshield/internal/adapters/frontend"
	"github.com/mikey/scamshield/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags, err := di.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: scam-detector [flags] <audio-file>\n%v\n", err)
		os.Exit(2)
	}

	container, err := di.BuildCLIContainer(flags, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(func(logger *zap.Logger, cli *frontend.CliFrontend) error {
		defer logger.Sync()

		_, err := cli.AnalyzeFile(context.Background(), flags.InputFile)
		return err
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
}
