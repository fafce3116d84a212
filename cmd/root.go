package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/rewrite"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	debug   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "idxloop [units...]",
	Short:            "idxloop - rewrites for-each loops over local lists into indexed loops",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 && !rewriteFlags.all {
			_ = cmd.Help()
			return
		}
		// Format: idxloop [unit1 unit2 ...] => behaves like the rewrite subcommand
		rewriteCmd.Run(rewriteCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() error {
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", rewrite.DefaultConfigPath, "Configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Stop starting new units after this duration")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rewriteFlags.register(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
