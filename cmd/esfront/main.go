package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every command.
type app struct {
	fs      afero.Fs
	verbose bool
	log     *zap.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:          "esfront",
		Short:        "A JavaScript, JSX and TypeScript parser front end",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log parser tracing to stderr")

	rootCmd.AddCommand(newTokenizeCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newPrintCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTest262Cmd(a))

	return rootCmd
}
