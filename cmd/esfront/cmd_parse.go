package main

import (
	"encoding/json"
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"esfront/pkg/driver"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Long: `Parse a file and dump its syntax tree.

The grammar follows the file extension (.mjs, .jsx, .ts, .tsx, ...) and can
be widened with --module, --jsx and --ts or a YAML configuration:

  sourceType: module
  plugins: [jsx, typescript]
  allowReturnOutsideFunction: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(a, cmd, args[0])
			if err != nil {
				return err
			}
			cfg, err := flags.config(a, args[0])
			if err != nil {
				return err
			}
			prog, err := driver.ParseSource(src, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(treeJSON(prog)); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "pretty":
				fmt.Fprintln(out, pretty.Sprintf("%# v", prog))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, pretty)")
	flags.bind(cmd)

	return cmd
}
