package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/internal"
	"github.com/gnoswap-labs/idxloop/rewrite"
)

var watchFlags unitFlags

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrite units again whenever they change below the source root",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := rewrite.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Invalid configuration", zap.Error(err))
		}
		if watchFlags.src != "" {
			config.Source = watchFlags.src
		}
		if watchFlags.out != "" {
			config.Output = watchFlags.out
		}
		if err := config.Validate(); err != nil {
			logger.Fatal("Invalid configuration", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		engine := rewrite.New(logger)
		w := rewrite.NewWriter(config, false)
		onChange := func(path string) {
			unit, ok := unitOf(config, path)
			if !ok {
				return
			}
			single := config
			single.Units = []string{unit}
			results, err := rewrite.ProcessUnits(ctx, logger, engine, single, rewrite.Options{Writer: w})
			printResults(os.Stdout, logger, results, &watchFlags)
			if err != nil {
				logUnitErrors(logger, single, err)
			}
		}

		watcher, err := internal.NewWatcher(logger, []string{config.Source}, onChange)
		if err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		logger.Info("Watching for changes", zap.String("source", config.Source), zap.String("output", config.Output))
		if err := watcher.Run(ctx); err != nil {
			logger.Fatal("Watcher stopped", zap.Error(err))
		}
	},
}

func init() {
	watchFlags.register(watchCmd)
}

// unitOf returns the unit name of path, or false when path is not below
// the source root or lies under the output root.
func unitOf(config rewrite.Config, path string) (string, bool) {
	if out, err := filepath.Abs(config.Output); err == nil {
		if abs, err := filepath.Abs(path); err == nil && (abs == out || strings.HasPrefix(abs, out+string(filepath.Separator))) {
			return "", false
		}
	}
	rel, err := filepath.Rel(config.Source, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
