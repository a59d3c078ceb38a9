package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"regequiv/regexlib"
)

// DotOptions holds flags for the dot command.
type DotOptions struct {
	*RootOptions
	Stage  string // nfa | dfa | min
	Output string // file path, "-" for stdout
	PNG    bool
}

// DotResult describes what the dot command produced.
type DotResult struct {
	Stage string `json:"stage"`
	File  string `json:"file,omitempty"`
	PNG   bool   `json:"png,omitempty"`
	DOT   string `json:"dot,omitempty"`
}

func (r DotResult) String() string {
	if r.PNG {
		return "PNG written to " + r.File
	}
	return "DOT written to " + r.File
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dot <regex>",
		Short: "Export an automaton as Graphviz DOT",
		Long: `Export one stage of the pipeline as a Graphviz digraph: the Thompson NFA,
the subset-construction DFA or the minimal DFA. --png renders the graph
with the dot tool, which must be on PATH.`,
		Example: `  regequiv dot "a(b|c)*" --stage nfa
  regequiv dot "(a|b)*abb" -o min.png --png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Stage, "stage", "min", "automaton to export (nfa|dfa|min)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&opts.PNG, "png", false, "render PNG via dot -Tpng")

	return cmd
}

func runDot(opts *DotOptions, pattern string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	re, err := opts.compile(pattern)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidRegex, "invalid regex", err)
	}

	var graph any
	switch opts.Stage {
	case "nfa":
		graph = re.NFA()
	case "dfa":
		graph = re.RawDFA()
	case "min":
		graph = re.DFA()
	default:
		return formatter.Fail(ErrCodeInvalidFlag, fmt.Sprintf("invalid stage %q: must be nfa, dfa or min", opts.Stage), nil)
	}
	if opts.PNG && opts.Output == "-" {
		return formatter.Fail(ErrCodeInvalidFlag, "--png needs an output file", nil)
	}

	var buf bytes.Buffer
	if err := regexlib.ExportDOT(&buf, graph); err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "exporting graph", err)
	}

	res := DotResult{Stage: opts.Stage, PNG: opts.PNG}
	switch {
	case opts.Output == "-":
		res.DOT = buf.String()
	case opts.PNG:
		res.File = opts.Output
		render := exec.Command("dot", "-Tpng", "-o", opts.Output)
		render.Stdin = &buf
		render.Stderr = cmd.ErrOrStderr()
		if err := render.Run(); err != nil {
			return formatter.Fail(ErrCodeWriteFailed, "dot failed", err)
		}
	default:
		res.File = opts.Output
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
			return formatter.Fail(ErrCodeWriteFailed, "writing "+opts.Output, err)
		}
	}

	if opts.Format != "json" && res.File == "" {
		// raw DOT so the output can be piped into dot
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
	} else {
		err = formatter.Success(res)
	}
	if err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "writing output", err)
	}
	return nil
}
