package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/formatter"
	"github.com/gnoswap-labs/idxloop/internal"
	tt "github.com/gnoswap-labs/idxloop/internal/types"
	"github.com/gnoswap-labs/idxloop/rewrite"
	"github.com/gnoswap-labs/idxloop/scanner"
)

// unitFlags are the flags shared by the commands that process units.
type unitFlags struct {
	src        string
	out        string
	all        bool
	jsonOutput bool
	jsonPath   string
	verbose    bool
}

func (f *unitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.src, "src", "", "Source root (overrides the configuration file)")
	cmd.Flags().StringVar(&f.out, "out", "", "Output root (overrides the configuration file)")
	cmd.Flags().BoolVar(&f.all, "all", false, "Process every .java file below the source root")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output decisions in JSON format")
	cmd.Flags().StringVarP(&f.jsonPath, "output", "o", "", "Output path (when using JSON)")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Also report loops that were left unchanged")
}

// resolveConfig loads the configuration file and applies the flags and
// positional units on top of it.
func resolveConfig(f *unitFlags, args []string) (rewrite.Config, error) {
	config, err := rewrite.LoadConfig(cfgFile)
	if err != nil {
		return config, err
	}
	if f.src != "" {
		config.Source = f.src
	}
	if f.out != "" {
		config.Output = f.out
	}
	if len(args) > 0 {
		config.Units = args
	}
	if err := config.Validate(); err != nil {
		return config, err
	}

	if f.all {
		files, err := scanner.New(config.Source, ".java").Exclude(config.Output).Scan()
		if err != nil {
			return config, fmt.Errorf("scan %s: %w", config.Source, err)
		}
		config.Units = nil
		for _, file := range files {
			config.Units = append(config.Units, file.Path)
		}
	}
	if len(config.Units) == 0 {
		return config, errors.New("no units to process: name them, list them in the configuration file or pass --all")
	}
	return config, nil
}

// logUnitErrors logs every error combined into err. A unit that does not
// exist gets a hint naming the closest unit below the source root.
func logUnitErrors(logger *zap.Logger, config rewrite.Config, err error) {
	for _, e := range multierr.Errors(err) {
		fields := []zap.Field{zap.Error(e)}
		var ue *rewrite.UnitError
		if errors.As(e, &ue) {
			fields = append(fields, zap.String("unit", ue.Unit))
			if errors.Is(ue.Err, fs.ErrNotExist) {
				if hint := closestUnit(config.Source, ue.Unit); hint != "" {
					fields = append(fields, zap.String("hint", "did you mean "+hint+"?"))
				}
			}
		}
		logger.Error("Error processing unit", fields...)
	}
}

// closestUnit returns the Java unit below root that best matches unit, or
// "" when none does.
func closestUnit(root, unit string) string {
	files, err := scanner.New(root, ".java").Scan()
	if err != nil {
		return ""
	}
	candidates := make([]string, len(files))
	for i, file := range files {
		candidates[i] = file.Path
	}

	ranks := fuzzy.RankFindFold(unit, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// reportable selects the issues worth showing.
func reportable(issues []tt.Issue, verbose bool) []tt.Issue {
	if verbose {
		return issues
	}
	var out []tt.Issue
	for _, issue := range issues {
		if issue.Suggestion != "" || issue.Severity <= tt.SeverityWarning {
			out = append(out, issue)
		}
	}
	return out
}

func printResults(w io.Writer, logger *zap.Logger, results []*internal.Result, f *unitFlags) {
	byUnit := make(map[string][]tt.Issue)
	sources := make(map[string]*internal.SourceCode)
	for _, res := range results {
		issues := reportable(res.Issues, f.verbose)
		if len(issues) == 0 {
			continue
		}
		byUnit[res.Unit] = issues
		sources[res.Unit] = internal.NewSourceCode(res.Source)
	}

	if f.jsonOutput {
		printJSON(w, logger, byUnit, f.jsonPath)
		return
	}

	units := make([]string, 0, len(byUnit))
	for unit := range byUnit {
		units = append(units, unit)
	}
	sort.Strings(units)

	for _, unit := range units {
		fmt.Fprint(w, formatter.GenerateFormattedIssue(byUnit[unit], sources[unit]))
	}

	loops, rewritten := 0, 0
	for _, res := range results {
		loops += len(res.Decisions)
		rewritten += res.Rewritten()
	}
	fmt.Fprintf(w, "%d units, %d loops, %d rewritten\n", len(results), loops, rewritten)
}

func printJSON(w io.Writer, logger *zap.Logger, byUnit map[string][]tt.Issue, jsonPath string) {
	d, err := json.MarshalIndent(byUnit, "", "  ")
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if jsonPath == "" {
		fmt.Fprintln(w, string(d))
		return
	}
	if err := os.WriteFile(jsonPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
