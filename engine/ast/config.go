package ast

import (
	"os"
	"sync"
)

// strictMode mirrors the source's UNITTEST flag: when enabled, NewNode
// rejects unknown slot names instead of silently accepting them. It is
// process-wide state, initialized once from the environment and changed
// afterward only by SetStrictMode (see "Global mutable state" in the design
// notes).
var (
	strictOnce sync.Once
	strict     bool
)

// StrictMode reports whether debug/testing schema checks are enabled.
// Controlled by the OMNIQL_AST_STRICT environment variable at first use;
// callers that need deterministic behavior in tests should call
// SetStrictMode explicitly instead of relying on the environment.
func StrictMode() bool {
	strictOnce.Do(func() {
		strict = os.Getenv("OMNIQL_AST_STRICT") != ""
	})
	return strict
}

// SetStrictMode overrides StrictMode's result for the remainder of the
// process. Intended for test setup only.
func SetStrictMode(on bool) {
	strictOnce.Do(func() {})
	strict = on
}
