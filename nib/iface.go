package nib

import "math/rand/v2"

// ifaceUndef is the PID sentinel marking a free interface-table slot
// (spec.md §3: "pid == UNDEF ⇒ slot free").
const ifaceUndef uint16 = 0

// MinRandomFactor and MaxRandomFactor bound the randomized reachable-time
// factor, expressed in thousandths per spec.md §4.5 (RFC 4861's default
// 0.5..1.5).
const (
	MinRandomFactor = 500
	MaxRandomFactor = 1500
)

// ReachTimeRecalcOffsetMS is the fixed offset at which
// RecalcReachTime reschedules itself.
const ReachTimeRecalcOffsetMS = 7_200_000 // 2h, RFC 4861 §6.3.4

// IfaceRecord is a per-interface ND parameter block (C5). See
// spec.md §3.
type IfaceRecord struct {
	PID uint16

	ReachTimeBase uint32
	ReachTime     uint32

	retransTimer TimerHandle
	recalcTimer  TimerHandle
}

// IsFree reports whether this slot holds no interface.
func (r *IfaceRecord) IsFree() bool {
	return r.PID == ifaceUndef
}

// IfaceGet implements C5's iface_get(iface_id): return the existing
// record for PID, or initialize the first free slot. ifaceID must be
// nonzero and <= len(iface table); violating that is a contract error
// (ErrPoolFull covers "no free slot", debugAssert covers "zero PID").
func (n *NIB) IfaceGet(ifaceID uint16) (*IfaceRecord, error) {
	debugAssert(ifaceID != ifaceUndef, "IfaceGet: interface id must be nonzero")

	for i := range n.iface {
		if n.iface[i].PID == ifaceID {
			return &n.iface[i], nil
		}
	}

	for i := range n.iface {
		if n.iface[i].IsFree() {
			n.iface[i] = IfaceRecord{PID: ifaceID}
			return &n.iface[i], nil
		}
	}

	return nil, ErrPoolFull
}

// RecalcReachTime implements C5's recalc_reach_time(iface): draw a
// random factor in [MinRandomFactor, MaxRandomFactor] thousandths, scale
// ReachTimeBase by it, and schedule the next recalculation.
func (n *NIB) RecalcReachTime(r *IfaceRecord) {
	factor := MinRandomFactor + rand.IntN(MaxRandomFactor-MinRandomFactor+1)
	r.ReachTime = uint32(uint64(r.ReachTimeBase) * uint64(factor) / 1000)

	n.timer().Add(r, EventReachTimeRecalc, &r.recalcTimer, ReachTimeRecalcOffsetMS)
}
