package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/converter"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/pathutil"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/report"
)

// inputFlags are the ledger parsing flags shared by every subcommand.
type inputFlags struct {
	delimiter string
	mapping   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", `field delimiter of the ledger file ("tab" for tab-separated)`)
	cmd.Flags().StringVarP(&f.mapping, "mapping", "m", "", "YAML file mapping raw unit, category and account labels")
}

// loadConfig loads the configuration and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, in *inputFlags) (*config.Config, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, err
	}
	if cfg.Debug && !debug {
		setupLogging(true)
	}

	if cmd.Flags().Changed("delimiter") {
		cfg.Input.Delimiter = config.NormalizeDelimiter(in.delimiter)
	}
	if cmd.Flags().Changed("mapping") {
		cfg.Input.MappingFile = in.mapping
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDashboard runs the shared read, map and aggregate pipeline.
func buildDashboard(cfg *config.Config, inputPath string) (*report.Dashboard, error) {
	paths := pathutil.New(pathutil.Config{
		InputPath:   inputPath,
		MappingPath: cfg.Input.MappingFile,
	})

	switch {
	case !paths.FileExists(paths.GetInputPath()):
		return nil, &ledger.InputError{Path: paths.GetInputPath(), Err: errors.New("ledger file does not exist")}
	case paths.IsDir(paths.GetInputPath()):
		return nil, &ledger.InputError{Path: paths.GetInputPath(), Err: errors.New("ledger path is a directory")}
	}

	slog.Debug("Reading ledger", "path", paths.GetInputPath(), "delimiter", cfg.Input.Delimiter)
	records, err := ledger.ReadFile(paths.GetInputPath(), ledger.ReadOptions{Delimiter: cfg.DelimiterRune()})
	if err != nil {
		return nil, err
	}

	var mapper *converter.Mapper
	if paths.HasMapping() {
		mapper, err = converter.NewMapper(paths.GetMappingPath())
		if err != nil {
			return nil, fmt.Errorf("failed to load mapping: %w", err)
		}
		slog.Debug("Loaded label mapping", "path", paths.GetMappingPath(), "entries", mapper.Len())
	}
	records = converter.NewConverter(mapper).Convert(records)

	d := report.Aggregate(records)
	slog.Info("Aggregated ledger", "records", len(records), "units", len(d.Units))
	return d, nil
}
