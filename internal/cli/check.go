package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// CheckResult is the outcome of comparing two regexes.
type CheckResult struct {
	Left       string  `json:"left"`
	Right      string  `json:"right"`
	Equivalent bool    `json:"equivalent"`
	Witness    *string `json:"witness,omitempty"`
	States     [2]int  `json:"states"` // minimal DFA sizes, left then right
}

func (r CheckResult) String() string {
	s := fmt.Sprintf("Equivalent: %t", r.Equivalent)
	if r.Witness != nil {
		s += fmt.Sprintf("\nWitness: %q", *r.Witness)
	}
	return s
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var witness bool

	cmd := &cobra.Command{
		Use:   "check <regex1> <regex2>",
		Short: "Compare two regexes",
		Long: `Compile both regexes to minimal DFAs and report whether they accept the
same language. With --witness a shortest word accepted by exactly one of
them is printed when they differ.

Exit codes:
  0 - Comparison done (equivalent or not)
  2 - Invalid regex`,
		Example: `  regequiv check "a(b|c)" "ab|ac"
  regequiv check "a*b" "ab*" --witness --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], args[1], rootOpts.witness(cmd, witness), cmd)
		},
	}

	cmd.Flags().BoolVar(&witness, "witness", false, "print a distinguishing word when not equivalent")

	return cmd
}

func runCheck(opts *RootOptions, left, right string, witness bool, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	r1, err := opts.compile(left)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidRegex, "invalid first regex", err)
	}
	r2, err := opts.compile(right)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidRegex, "invalid second regex", err)
	}

	res := CheckResult{
		Left:       left,
		Right:      right,
		Equivalent: r1.Equivalent(r2),
		States:     [2]int{r1.DFA().NumStates(), r2.DFA().NumStates()},
	}
	if !res.Equivalent && witness {
		if w, ok := r1.Distinguish(r2); ok {
			res.Witness = &w
		}
	}
	opts.logger().Debug("regexes compared", slog.Bool("equivalent", res.Equivalent))

	if err := formatter.Success(res); err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "writing result", err)
	}
	return nil
}
