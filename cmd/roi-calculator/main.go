package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/internal/config"
	"github.com/iwvelando/roi-calculator/internal/logging"
	"github.com/iwvelando/roi-calculator/pkg/constants"
	"github.com/iwvelando/roi-calculator/pkg/output"
	"github.com/iwvelando/roi-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	fields, warnings := conf.FieldSet()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	metrics := calculator.Derive(fields)
	logger.Debug("metrics derived",
		zap.String("op", "main"),
		zap.Bool("showResults", metrics.ShowResults),
		zap.Float64("roi", metrics.ROI),
	)

	if err := render(os.Stdout, outputFormat, fields, metrics); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func render(w io.Writer, outputFormat string, fields calculator.FieldSet, metrics calculator.MetricSet) error {
	switch outputFormat {
	case constants.OutputFormatCSV:
		output.CsvFormat(w, metrics)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, fields, metrics)
	default:
		output.PrettyFormat(w, fields, metrics)
	}
	return nil
}
