package machine

import (
	"fmt"
	"log"
)

// DiagnosticKind identifies the rule behind a non-fatal diagnostic.
type DiagnosticKind string

const (
	// DiagUnknownPropertyKey flags a top-level configuration key with no
	// registered setter.
	DiagUnknownPropertyKey DiagnosticKind = "unknown-property-key"

	// DiagUnknownAdapterKey flags an adapter configuration key the applier
	// does not recognize.
	DiagUnknownAdapterKey DiagnosticKind = "unknown-adapter-key"

	// DiagUnsupportedAttachment flags an attachment type the platform
	// knows but the applier does not implement yet. Distinct from
	// DiagUnrecognizedAttachment so callers can tell "not yet supported"
	// from malformed input.
	DiagUnsupportedAttachment DiagnosticKind = "unsupported-attachment-type"

	// DiagUnrecognizedAttachment flags an attachment type outside the
	// known enumeration.
	DiagUnrecognizedAttachment DiagnosticKind = "unrecognized-attachment-type"

	// DiagUnsupportedNATDriver flags NAT engine settings, which are
	// recognized but not applied.
	DiagUnsupportedNATDriver DiagnosticKind = "unsupported-nat-driver"
)

// Diagnostic describes one non-fatal observation made while applying a
// configuration. Diagnostics are observational only: they never change the
// success or failure of the apply call that produced them.
type Diagnostic struct {
	// Kind identifies the rule that produced the diagnostic.
	Kind DiagnosticKind

	// Key is the configuration key or value the diagnostic is about.
	Key string

	// Detail is a human-readable explanation.
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Key, d.Detail)
}

// DiagnosticSink receives diagnostics as they are produced.
type DiagnosticSink func(Diagnostic)

// logDiagnostic is the default sink.
func logDiagnostic(d Diagnostic) {
	log.Printf("Warning: %s", d)
}
