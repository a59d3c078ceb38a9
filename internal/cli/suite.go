package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"regequiv/internal/suite"
)

// SuiteCaseResult is one case of a suite run in JSON output.
type SuiteCaseResult struct {
	Name       string  `json:"name,omitempty"`
	Line       int     `json:"line"`
	Left       string  `json:"left"`
	Op         string  `json:"op"`
	Right      string  `json:"right"`
	Equivalent bool    `json:"equivalent"`
	Pass       bool    `json:"pass"`
	Witness    *string `json:"witness,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// SuiteResult is a suite run in JSON output.
type SuiteResult struct {
	RunID  string            `json:"run_id"`
	File   string            `json:"file"`
	Cases  []SuiteCaseResult `json:"cases"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
	Total  int               `json:"total"`
}

// NewSuiteCommand creates the suite command.
func NewSuiteCommand(rootOpts *RootOptions) *cobra.Command {
	var witness bool

	cmd := &cobra.Command{
		Use:   "suite <file>",
		Short: "Run a file of expected equivalences",
		Long: `Run every case of a suite file. Each case is written

  [name:] "regex1" == "regex2";   or   [name:] "regex1" != "regex2";

and # starts a comment.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (missing file, syntax error)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(rootOpts, args[0], rootOpts.witness(cmd, witness), cmd)
		},
	}

	cmd.Flags().BoolVar(&witness, "witness", false, "show distinguishing words for unequal pairs")

	return cmd
}

func runSuite(opts *RootOptions, path string, witness bool, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	s, err := suite.Load(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return formatter.Fail(ErrCodeFile, "reading suite file", err)
		}
		return formatter.Fail(ErrCodeSuiteSyntax, "parsing suite file", err)
	}

	rep := suite.Run(suite.Context{Logger: opts.logger(), Witness: witness, Normalize: opts.Normalize}, path, s)

	if opts.Format == "json" {
		err = formatter.Success(newSuiteResult(rep))
	} else {
		err = rep.WriteText(cmd.OutOrStdout())
	}
	if err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "writing report", err)
	}

	if !rep.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d cases failed", rep.Failed, len(rep.Results)))
	}
	return nil
}

func newSuiteResult(rep *suite.Report) SuiteResult {
	out := SuiteResult{
		RunID:  rep.RunID,
		File:   rep.File,
		Cases:  make([]SuiteCaseResult, 0, len(rep.Results)),
		Passed: rep.Passed,
		Failed: rep.Failed,
		Total:  len(rep.Results),
	}
	for _, r := range rep.Results {
		c := SuiteCaseResult{
			Name:       r.Case.Name,
			Line:       r.Case.Pos.Line,
			Left:       r.Case.Left,
			Op:         r.Case.Op,
			Right:      r.Case.Right,
			Equivalent: r.Equivalent,
			Pass:       r.Passed(),
		}
		if r.HasWitness {
			w := r.Witness
			c.Witness = &w
		}
		if r.Err != nil {
			c.Error = r.Err.Error()
		}
		out.Cases = append(out.Cases, c)
	}
	return out
}
