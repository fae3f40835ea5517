package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"esfront/pkg/driver"
	"esfront/pkg/errors"
)

func newCheckCmd(a *app) *cobra.Command {
	var flags grammarFlags
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Parse files and report their diagnostics",
		Long: `Parse every file and print its diagnostics. The command fails when any
file does not parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for _, path := range args {
				src, err := loadSource(a, cmd, path)
				if err != nil {
					return err
				}
				cfg, err := flags.config(a, path)
				if err != nil {
					return err
				}
				_, err = driver.ParseSource(src, cfg)
				if err == nil {
					if !quiet {
						fmt.Fprintf(out, "ok   %s\n", src.DisplayPath())
					}
					continue
				}
				failed++
				a.log.Debug("check failed", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(out, "FAIL %s\n", src.DisplayPath())
				if perr, ok := err.(*errors.ParseError); ok {
					errors.DisplayErrors(errOut, perr.Source, perr.Diagnostics)
				} else {
					fmt.Fprintln(errOut, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failing files")
	flags.bind(cmd)

	return cmd
}
