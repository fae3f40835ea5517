package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esfront/pkg/conformance"
	"esfront/pkg/driver"
)

func newTest262Cmd(a *app) *cobra.Command {
	var (
		testPath     string
		filter       string
		skipFeatures []string
		showFailures bool
		depth        int
	)

	cmd := &cobra.Command{
		Use:   "test262",
		Short: "Run the parser over a test262 checkout",
		Long: `Parse every test of a test262 checkout and compare the outcome with its
front-matter: negative parse and early tests must be rejected, every other
test must parse. Scripts are parsed in sloppy and strict mode.

Examples:
  esfront test262 --path ../test262
  esfront test262 --path ../test262 --filter 'language/expressions/**'
  esfront test262 --path ../test262 --filter '*arrow*.js' --failures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if testPath == "" {
				return fmt.Errorf("test262 path not specified")
			}
			r := &conformance.Runner{
				Fs:           a.fs,
				Root:         testPath,
				Filter:       filter,
				Config:       driver.DefaultConfig(),
				SkipFeatures: skipFeatures,
				Logger:       a.log,
			}
			r.Config.Logger = a.log
			stats, results, err := r.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showFailures {
				conformance.WriteFailures(out, results)
			}
			if depth > 0 {
				conformance.WriteDirectories(out, results, depth)
			}
			conformance.WriteSummary(out, stats)
			if stats.Failed > 0 {
				return fmt.Errorf("%d tests failed", stats.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&testPath, "path", "", "path to the test262 directory")
	cmd.Flags().StringVar(&filter, "filter", "", "glob selecting tests by relative path or file name")
	cmd.Flags().StringSliceVar(&skipFeatures, "skip-features", []string{"decorators", "source-phase-imports", "import-defer"}, "skip tests using these features")
	cmd.Flags().BoolVar(&showFailures, "failures", false, "list every failing test")
	cmd.Flags().IntVar(&depth, "depth", 0, "print pass rates per directory down to this depth")

	return cmd
}
