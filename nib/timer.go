package nib

// EventKind identifies which deferred callback a TimerHandle was
// scheduled for. The event-timer service itself is an external
// collaborator (spec.md §1); nib only needs to schedule and cancel
// handles through it.
type EventKind uint8

const (
	// EventNUD fires a neighbor-unreachability-detection probe.
	EventNUD EventKind = iota
	// EventSNDNA fires a deferred solicited Neighbor Advertisement.
	EventSNDNA
	// EventAddrReg fires an RFC 8505 address-registration timeout.
	EventAddrReg
	// EventPrefixTimeout fires a prefix-list entry's valid-lifetime
	// expiration.
	EventPrefixTimeout
	// EventReachTimeRecalc fires periodic recalculation of an
	// interface's randomized reachable time.
	EventReachTimeRecalc
	// EventRetransTimer fires the interface's retransmission timer.
	EventRetransTimer
)

func (k EventKind) String() string {
	switch k {
	case EventNUD:
		return "NUD"
	case EventSNDNA:
		return "SND_NA"
	case EventAddrReg:
		return "ADDR_REG"
	case EventPrefixTimeout:
		return "PREFIX_TIMEOUT"
	case EventReachTimeRecalc:
		return "REACH_TIME_RECALC"
	case EventRetransTimer:
		return "RETRANS_TIMER"
	default:
		return "UNKNOWN"
	}
}

// TimerHandle is the embedded, stable-address record a timer event is
// keyed on. Per spec.md §9 ("Timer handles live in the record"),
// cancellation is by the address of this struct, so the owning ONL /
// OFFL / interface record must never be moved while a handle might be
// scheduled — pool slots are allocated once in a fixed-size array and
// never relocated, which gives the required pinning for free.
type TimerHandle struct {
	kind      EventKind
	scheduled bool
}

// Scheduled reports whether this handle currently has a pending event.
func (h *TimerHandle) Scheduled() bool {
	return h != nil && h.scheduled
}

// EventTimer is the binding to the external event-timer service (C8).
// nib depends only on this interface so the package remains testable
// without a real timer wheel, the same way the teacher's RIB.CleanupTask
// takes an explicit quit channel and TTL rather than reaching for a
// process-wide timer.
type EventTimer interface {
	// Add schedules handle to fire after offsetMS milliseconds,
	// accumulated relative to other pending events of the same kind.
	// Re-adding an already-scheduled handle reschedules it.
	Add(ctx any, kind EventKind, handle *TimerHandle, offsetMS uint32)
	// Remove cancels handle if it is pending. It is always safe to call,
	// including on a handle that was never scheduled.
	Remove(handle *TimerHandle)
	// Lookup returns the remaining offset in milliseconds until ctx's
	// event of the given kind fires, and whether one is pending at all.
	Lookup(ctx any, kind EventKind) (offsetMS uint32, ok bool)
}

// NullTimer is an EventTimer that never fires and never reports a
// pending event. It is useful for callers that do not wire a real
// event-timer service (e.g. tests of the pool/FIFO/LPM logic in
// isolation).
type NullTimer struct{}

func (NullTimer) Add(ctx any, kind EventKind, handle *TimerHandle, offsetMS uint32) {
	if handle != nil {
		handle.kind = kind
		handle.scheduled = true
	}
}

func (NullTimer) Remove(handle *TimerHandle) {
	if handle != nil {
		handle.scheduled = false
	}
}

func (NullTimer) Lookup(ctx any, kind EventKind) (uint32, bool) {
	return 0, false
}
