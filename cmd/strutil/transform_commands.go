package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	strutil "github.com/baditaflorin/go_strutil"
)

func newCamelCaseCommand() *cobra.Command {
	var upperFirst bool

	cmd := &cobra.Command{
		Use:   "camelcase <text>",
		Short: "Convert separated words to camelCase",
		Long: `Convert separated words to camelCase.

Any run of ':', '-', '_' or '.' is removed and the character after it is
upper-cased. The first character is only upper-cased with --upper-first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.CamelCase(args[0], upperFirst))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&upperFirst, "upper-first", "u", false, "Upper-case the first character too")
	return cmd
}

func newHyphenateCommand() *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "hyphenate <text>",
		Short: "Convert camelCase to separated lower-case words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.HyphenateWith(args[0], separator))
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", strutil.DefaultSeparator, "Separator inserted before each upper-case letter")
	return cmd
}

func newQuoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <text>",
		Short: "Wrap text in double quotes, escaping embedded quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Quote(args[0]))
			return nil
		},
	}
}

func newUnquoteCommand() *cobra.Command {
	var quoteChar string

	cmd := &cobra.Command{
		Use:   "unquote <text>",
		Short: "Strip surrounding quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.UnquoteWith(args[0], quoteChar))
			return nil
		},
	}
	cmd.Flags().StringVarP(&quoteChar, "quote", "q", strutil.DefaultQuote, "Quote character to strip")
	return cmd
}

func newHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <text>",
		Short: "Print the 32-bit polynomial hash of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Hash(args[0]))
			return nil
		},
	}
}

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <template> [args...]",
		Short: "Replace {N} placeholders with positional arguments",
		Example: `  strutil format "{0} and {1}" x y
  strutil format "{0} {2}" x y`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]interface{}, len(args)-1)
			for i, arg := range args[1:] {
				values[i] = arg
			}
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Format(args[0], values...))
			return nil
		},
	}
}

func newPadCommand(use, short string, right bool) *cobra.Command {
	var fill string

	cmd := &cobra.Command{
		Use:   use + " <value> <length>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}

			pad := strutil.PadLeft
			if right {
				pad = strutil.PadRight
			}
			padded, err := pad(args[0], length, fill)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), padded)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fill, "fill", "f", " ", "Fill pattern, repeated and cut to fit")
	return cmd
}
