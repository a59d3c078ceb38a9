package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewReplCommand creates the interactive comparison loop.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Compare regexes interactively",
		Long: `Ask for two regexes, print whether they are equivalent and offer another
round. An invalid regex restarts the round. End of input quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(rootOpts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runRepl(opts *RootOptions, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	for {
		left, ok := ask("Enter first regex: ")
		if !ok {
			break
		}
		right, ok := ask("Enter second regex: ")
		if !ok {
			break
		}

		eq, err := compare(opts, left, right)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Equivalent: %t\n\n", eq)

		var ans string
		for {
			ans, ok = ask("Would you like to enter other data?(y/n)\n")
			if !ok || ans == "y" || ans == "n" {
				break
			}
			fmt.Fprintln(out, "Invalid input")
		}
		if !ok || ans == "n" {
			break
		}
	}
	return sc.Err()
}

func compare(opts *RootOptions, left, right string) (bool, error) {
	r1, err := opts.compile(left)
	if err != nil {
		return false, err
	}
	r2, err := opts.compile(right)
	if err != nil {
		return false, err
	}
	return r1.Equivalent(r2), nil
}
