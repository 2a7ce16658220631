// Command strutil runs the string utilities from the command line.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := execute(&commandContext{}, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command with the given arguments and streams, closing the
// command logger before returning.
func execute(ctx *commandContext, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer ctx.close()

	cmd := newRootCommand(ctx)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
