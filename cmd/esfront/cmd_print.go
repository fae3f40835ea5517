package main

import (
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"esfront/pkg/driver"
	"esfront/pkg/printer"
)

func newPrintCmd(a *app) *cobra.Command {
	var showDiff bool
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Parse a file and print it back in normalized form",
		Args:  cobra.ExactArgs(1),
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
			out := printer.Print(prog)
			if showDiff {
				writeLineDiff(cmd.OutOrStdout(), src.Content, out)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "show a line diff between the input and the printed output")
	flags.bind(cmd)

	return cmd
}

// writeLineDiff writes a line-based diff from before to after, prefixing
// removed lines with "-", added lines with "+" and kept lines with " ".
func writeLineDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitKeepingLast(d.Text) {
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		}
	}
}

// splitKeepingLast splits text into lines without their terminators. A
// missing final newline still yields the last line.
func splitKeepingLast(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
