package vbox

import (
	"strings"
)

// fakeRunner records every VBoxManage invocation and serves canned output.
type fakeRunner struct {
	calls [][]string

	// output is returned from Output calls.
	output string

	// runErr fails Run calls; outputErr fails Output calls.
	runErr    error
	outputErr error
}

func (r *fakeRunner) Run(args ...string) error {
	r.calls = append(r.calls, args)
	return r.runErr
}

func (r *fakeRunner) Output(args ...string) (string, error) {
	r.calls = append(r.calls, args)
	return r.output, r.outputErr
}

// call returns invocation i as a single space-joined string for easy
// comparison.
func (r *fakeRunner) call(i int) string {
	if i >= len(r.calls) {
		return ""
	}
	return strings.Join(r.calls[i], " ")
}
