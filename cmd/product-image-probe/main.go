// cmd/product-image-probe/main.go
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"imagegecko-probe/internal/common/config"
	"imagegecko-probe/internal/common/errors"
	httpclient "imagegecko-probe/internal/common/http"
	"imagegecko-probe/internal/common/logger"
	"imagegecko-probe/internal/common/metrics"
	"imagegecko-probe/internal/probe"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 0 for every handled probe outcome, including a missing image,
// a failed request and a non-200 status. Only unusable configuration is 1.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("product-image-probe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "path to a YAML config file")
	endpoint := fs.String("endpoint", config.DefaultEndpoint, "product-image API endpoint")
	imagePath := fs.String("image", config.DefaultImagePath, "source image to send")
	timeoutMS := fs.Int("timeout", config.DefaultTimeoutMS, "request timeout in milliseconds")
	prompt := fs.String("prompt", config.DefaultPrompt, "generation prompt")
	productID := fs.Int("product-id", config.DefaultProductID, "product_id sent in the payload")
	dryRun := fs.Bool("dry-run", false, "encode and build the payload without sending it")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this textfile at exit")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	logFormat := fs.String("log-format", "console", "console or json")

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, envFile, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return 1
	}

	// Flags win over file and environment, but only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Probe.Endpoint = *endpoint
		case "image":
			cfg.Probe.ImagePath = *imagePath
		case "timeout":
			cfg.Probe.Timeout = *timeoutMS
		case "prompt":
			cfg.Payload.Prompt = *prompt
		case "product-id":
			cfg.Payload.ProductID = *productID
		case "dry-run":
			cfg.Probe.DryRun = *dryRun
		case "metrics-file":
			cfg.Metrics.File = *metricsFile
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(stderr, "logger init failed: %v\n", err)
		return 1
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	if envFile != "" {
		zapLog.Debug("loaded env file", zap.String("path", envFile))
	}

	probeCfg := probe.FromAppConfig(cfg)
	svc := probe.NewService(probe.ServiceDependencies{
		Logger: log,
		Client: httpclient.NewClient(probeCfg.Timeout, probeCfg.Headers()),
	}, probeCfg, stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := svc.Execute(ctx)
	if err != nil {
		log.Debug("probe finished with handled error", map[string]interface{}{
			"errorCode": string(errors.CodeOf(err)),
			"outcome":   string(result.Outcome),
		})
	}

	if cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.File); err != nil {
			log.WithError(err).Warn("failed to write metrics textfile", map[string]interface{}{
				"path": cfg.Metrics.File,
			})
		}
	}

	return 0
}
