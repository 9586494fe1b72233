// Package internalcheck holds policy tests for the wrapper's own source.
//
// It is not part of the public API. The tests here enforce invariants a
// reviewer cannot see from any single call site, such as the rule that no
// callback trampoline may let a panic unwind across the foreign boundary.
package internalcheck
