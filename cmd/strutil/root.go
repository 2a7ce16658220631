package main

import (
	"fmt"
	"io"

	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

// commandContext carries state shared by every subcommand.
type commandContext struct {
	verbose bool
	logger  l.Logger
}

// loggerFor returns the command logger, creating it on first use. Entries go to
// stderr with --verbose and are dropped otherwise.
func (c *commandContext) loggerFor(cmd *cobra.Command) (l.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	output := io.Discard
	if c.verbose {
		output = cmd.ErrOrStderr()
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: output})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	c.logger = logger
	return logger, nil
}

// close releases the logger. It runs whether or not the command succeeded.
func (c *commandContext) close() {
	if c.logger != nil {
		_ = c.logger.Close()
		c.logger = nil
	}
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strutil",
		Short:         "String transformation utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newCamelCaseCommand())
	rootCmd.AddCommand(newHyphenateCommand())
	rootCmd.AddCommand(newQuoteCommand())
	rootCmd.AddCommand(newUnquoteCommand())
	rootCmd.AddCommand(newHashCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newPadCommand("padleft", "Pad a value on the left to a target length", false))
	rootCmd.AddCommand(newPadCommand("padright", "Pad a value on the right to a target length", true))
	rootCmd.AddCommand(newSimilarityCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))

	return rootCmd
}
