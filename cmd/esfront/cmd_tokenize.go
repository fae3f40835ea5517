package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"esfront/pkg/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream of a file, one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(a, cmd, args[0])
			if err != nil {
				return err
			}
			toks, err := driver.TokenizeSource(src)
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%-16s %-24s %d:%d\n", tok.Type, strconv.Quote(tok.Literal), tok.Start.Line, tok.Start.Column)
			}
			return err
		},
	}
}
