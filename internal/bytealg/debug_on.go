//go:build scandebug

package bytealg

// DebugAssertions enables contract checks on every word load and index
// computation.
const DebugAssertions = true
