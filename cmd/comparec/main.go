package main

import (
	"log"
	"os"

	"github.com/2m24/Compare/internal/comparer"
	"github.com/2m24/Compare/internal/config"
	"github.com/2m24/Compare/internal/logger"
	"github.com/2m24/Compare/internal/models"
	"github.com/2m24/Compare/internal/renderer"
	"github.com/2m24/Compare/internal/reporter"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if flags.Mode != "" {
		gCfg.CompareConfig.Mode = flags.Mode
		zLogger.Info().Str("mode", flags.Mode).Msg("Mode overridden by command line flag")
	}

	oldMarkup, err := os.ReadFile(flags.OldFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("path", flags.OldFile).Msg("Failed to read first document")
	}
	newMarkup, err := os.ReadFile(flags.NewFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("path", flags.NewFile).Msg("Failed to read second document")
	}

	engine, err := comparer.NewComparer(gCfg.CompareConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build comparer")
	}

	outcome := <-engine.CompareAsync(string(oldMarkup), string(newMarkup))
	if outcome.Err != nil {
		zLogger.Fatal().Err(outcome.Err).Msg("Comparison failed")
	}
	result := outcome.Result

	zLogger.Info().
		Int("additions", result.Summary.Additions).
		Int("deletions", result.Summary.Deletions).
		Int("modifications", result.Summary.Modifications).
		Int("total", result.Summary.TotalChanges).
		Msg("Comparison summary")

	switch result.Mode {
	case models.ModeMutual:
		gen, err := reporter.NewHTMLReportGenerator(zLogger, gCfg.ReporterConfig)
		if err != nil {
			zLogger.Fatal().Err(err).Msg("Failed to initialize report generator")
		}
		path, err := gen.GenerateReport(result, flags.OutputFile)
		if err != nil {
			zLogger.Fatal().Err(err).Msg("Failed to generate HTML report")
		}
		zLogger.Info().Str("report", path).Msg("Report written")
	case models.ModeTargetOnly:
		blob := renderer.Join(result.Target)
		outputFile := flags.OutputFile
		if outputFile == "" {
			outputFile = "compare_target.html"
		}
		if err := os.WriteFile(outputFile, []byte(blob), 0644); err != nil {
			zLogger.Fatal().Err(err).Str("path", outputFile).Msg("Failed to write highlighted output")
		}
		zLogger.Info().Str("output", outputFile).Msg("Highlighted document written")
	}
}
