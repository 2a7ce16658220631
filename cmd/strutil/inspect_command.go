package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	strutil "github.com/baditaflorin/go_strutil"
)

type inspectRow struct {
	Operation string `json:"operation"`
	Result    string `json:"result"`
}

func inspect(input string) []inspectRow {
	camel := strutil.CamelCase(input, false)
	hyphenated := strutil.Hyphenate(input)

	return []inspectRow{
		{"length", strconv.Itoa(utf8.RuneCountInString(input))},
		{"bytes", strconv.Itoa(len(input))},
		{"camelcase", camel},
		{"camelcase --upper-first", strutil.CamelCase(input, true)},
		{"hyphenate", hyphenated},
		{"quote", strutil.Quote(input)},
		{"unquote", strutil.Unquote(input)},
		{"hash", strconv.FormatInt(int64(strutil.Hash(input)), 10)},
		{"similarity to camelcase", strconv.FormatFloat(strutil.Similarity(input, camel), 'f', 4, 64)},
		{"similarity to hyphenate", strconv.FormatFloat(strutil.Similarity(input, hyphenated), 'f', 4, 64)},
	}
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect <text>",
		Short: "Show every transformation of a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			rows := inspect(args[0])
			logger.Debug("Inspected input", "runes", utf8.RuneCountInString(args[0]), "rows", len(rows))

			if output == outputJSON {
				return writeJSON(cmd, rows)
			}

			cells := make([][]string, len(rows))
			for i, row := range rows {
				cells[i] = []string{row.Operation, row.Result}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Operation", "Result"}, cells))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or json")
	return cmd
}
