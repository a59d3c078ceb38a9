package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// InputMatch reports whether one input is in the language.
type InputMatch struct {
	Input string `json:"input"`
	Match bool   `json:"match"`
}

// MatchResult holds the match command's answers in argument order.
type MatchResult struct {
	Regex   string       `json:"regex"`
	Matches []InputMatch `json:"matches"`
}

func (r MatchResult) String() string {
	lines := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		lines[i] = fmt.Sprintf("%q: %t", m.Input, m.Match)
	}
	return strings.Join(lines, "\n")
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <regex> <input>...",
		Short: "Test whole inputs against a regex",
		Long: `Run each input through the minimal DFA of regex. An input matches only
when the whole of it is in the language.`,
		Example: `  regequiv match "(ab|a)*c" abc aabac bc`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, args[0], args[1:], cmd)
		},
	}
}

func runMatch(opts *RootOptions, pattern string, inputs []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	re, err := opts.compile(pattern)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidRegex, "invalid regex", err)
	}

	res := MatchResult{Regex: pattern, Matches: make([]InputMatch, len(inputs))}
	for i, in := range inputs {
		res.Matches[i] = InputMatch{Input: in, Match: re.MatchString(opts.text(in))}
	}

	if err := formatter.Success(res); err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "writing result", err)
	}
	return nil
}
