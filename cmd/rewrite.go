package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/rewrite"
)

var (
	rewriteFlags unitFlags
	dryRun       bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [units...]",
	Short: "Rewrite the units and write them under the output root",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := resolveConfig(&rewriteFlags, args)
		if err != nil {
			logger.Fatal("Invalid configuration", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if !runRewrite(ctx, logger, rewrite.New(logger), config, rewrite.NewWriter(config, dryRun)) {
			os.Exit(1)
		}
	},
}

func init() {
	rewriteFlags.register(rewriteCmd)
	rewriteCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rewritten units instead of writing them")
}

// runRewrite processes and writes the units and reports whether every unit
// succeeded.
func runRewrite(ctx context.Context, logger *zap.Logger, engine rewrite.UnitEngine, config rewrite.Config, w rewrite.UnitWriter) bool {
	results, err := rewrite.ProcessUnits(ctx, logger, engine, config, rewrite.Options{
		Writer:   w,
		Progress: os.Stderr,
	})
	printResults(os.Stdout, logger, results, &rewriteFlags)
	if err != nil {
		logUnitErrors(logger, config, err)
		return false
	}
	return true
}
