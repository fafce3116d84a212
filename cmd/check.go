package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/rewrite"
)

var checkFlags unitFlags

// checkCmd reports what rewrite would change. It exits with status 1 when
// a loop can be rewritten or a unit fails.
var checkCmd = &cobra.Command{
	Use:   "check [units...]",
	Short: "Report rewritable loops without writing anything",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := resolveConfig(&checkFlags, args)
		if err != nil {
			logger.Fatal("Invalid configuration", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := rewrite.ProcessUnits(ctx, logger, rewrite.New(logger), config, rewrite.Options{Progress: os.Stderr})
		printResults(os.Stdout, logger, results, &checkFlags)
		if err != nil {
			logUnitErrors(logger, config, err)
			os.Exit(1)
		}
		for _, res := range results {
			if res.Rewritten() > 0 {
				os.Exit(1)
			}
		}
	},
}

func init() {
	checkFlags.register(checkCmd)
}
