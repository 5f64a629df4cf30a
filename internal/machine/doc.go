// Package machine applies a declarative Machine configuration to a live,
// writable virtual machine handle.
//
// The package owns the decision logic only: which controller/bus pairings
// are legal, where each device lands, and which setter a configuration key
// dispatches to. All platform access goes through the small interfaces in
// interfaces.go, satisfied in production by the vbox package and by
// call-recording mocks in tests.
//
// Every apply call is synchronous and single-threaded. Calls are fail-fast
// without rollback: a fatal validation or resolution error aborts the rest
// of the call but leaves earlier mutations in place. Callers that need
// atomicity must snapshot and restore the machine externally. Holding the
// machine's write lock for the duration of a call is the session manager's
// job, not this package's.
package machine
