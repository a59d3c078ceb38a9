package suite

import (
	"fmt"
	"io"
	"strconv"
)

// Label names a case in output: its identifier when given, else its line.
func (c *Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return "line " + strconv.Itoa(c.Pos.Line)
}

// WriteText prints one line per case and a summary line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s %s: %q %s %q", status, res.Case.Label(), res.Case.Left, res.Case.Op, res.Case.Right)
		switch {
		case res.Err != nil:
			line += " (" + res.Err.Error() + ")"
		case res.HasWitness:
			line += fmt.Sprintf(" (witness %q)", res.Witness)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
	return err
}
