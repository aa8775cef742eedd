package nib

import "errors"

// ErrNoRoute is returned by GetRoute when neither the off-link pool nor
// the default router list can supply a next hop (spec.md's
// "-NET_UNREACH").
var ErrNoRoute = errors.New("nib: no route to destination")

// ErrPoolFull is returned by mutation paths that cannot fall back to
// eviction (DRL, OFFL, ABR, interface table) when their fixed-size pool
// has no free slot.
var ErrPoolFull = errors.New("nib: pool exhausted")

// ErrInvalidPrefixLen is a contract-violation error for prefix lengths
// outside [1, 128].
var ErrInvalidPrefixLen = errors.New("nib: prefix length out of range")

// ErrInvalidNUDState is a contract-violation error for an initial NUD
// state outside {INCOMPLETE, STALE, UNREACHABLE}.
var ErrInvalidNUDState = errors.New("nib: disallowed initial NUD state")

// Debug gates contract-violation assertions. Spec.md §7 treats invalid
// arguments as aborting in debug builds and as undefined-but-safe in
// release builds; Go has no separate debug/release build mode, so this
// package-level switch plays that role. It defaults to false so library
// consumers get the release behavior (documented error returns, no
// panics) unless they opt in, e.g. from test code.
var Debug = false

func debugAssert(cond bool, msg string) {
	if Debug && !cond {
		panic("nib: assertion failed: " + msg)
	}
}
