package suite

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"regequiv/regexlib"
)

// Result is the outcome of one case.
type Result struct {
	Case       *Case
	Equivalent bool
	// Witness is set when the pair differs and witnesses were requested.
	Witness    string
	HasWitness bool
	// Err holds a compile error for either side; the case then fails.
	Err error
}

// Passed reports whether the observed relation is the expected one.
func (r Result) Passed() bool {
	return r.Err == nil && r.Equivalent == r.Case.ExpectEquivalent()
}

// Report collects the results of one run.
type Report struct {
	RunID   string
	File    string
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every case passed.
func (r *Report) OK() bool { return r.Failed == 0 }

// Run checks each case of s in order. A regex that fails to compile
// fails its case but does not stop the run.
func Run(ctx Context, file string, s *Suite) *Report {
	log := ctx.logger()
	rep := &Report{RunID: ctx.runID(), File: file}
	log = log.With(slog.String("run_id", rep.RunID), slog.String("file", file))
	log.Debug("suite started", slog.Int("cases", len(s.Cases)))

	cache := map[string]*regexlib.Regex{}
	compile := func(p string) (*regexlib.Regex, error) {
		if ctx.Normalize {
			p = norm.NFC.String(p)
		}
		if re, ok := cache[p]; ok {
			return re, nil
		}
		re, err := regexlib.Compile(p)
		if err != nil {
			return nil, err
		}
		log.Debug("regex compiled",
			slog.String("regex", p),
			slog.Int("nfa_states", re.NFA().NumStates()),
			slog.Int("dfa_states", re.RawDFA().NumStates()),
			slog.Int("min_states", re.DFA().NumStates()),
		)
		cache[p] = re
		return re, nil
	}

	for _, c := range s.Cases {
		res := Result{Case: c}
		left, err := compile(c.Left)
		if err == nil {
			var right *regexlib.Regex
			right, err = compile(c.Right)
			if err == nil {
				res.Equivalent = left.Equivalent(right)
				if !res.Equivalent && ctx.Witness {
					res.Witness, res.HasWitness = left.Distinguish(right)
				}
			}
		}
		res.Err = err

		if res.Passed() {
			rep.Passed++
		} else {
			rep.Failed++
		}
		log.Debug("case checked",
			slog.Int("line", c.Pos.Line),
			slog.String("left", c.Left),
			slog.String("right", c.Right),
			slog.Bool("equivalent", res.Equivalent),
			slog.Bool("passed", res.Passed()),
		)
		if res.Err != nil {
			log.Warn("case has invalid regex", slog.Int("line", c.Pos.Line), slog.Any("error", res.Err))
		}
		rep.Results = append(rep.Results, res)
	}

	log.Info("suite finished", slog.Int("passed", rep.Passed), slog.Int("failed", rep.Failed))
	return rep
}
