// Package nib implements the Neighbor Information Base: the in-memory
// database backing IPv6 Neighbor Discovery on a constrained host or
// router. See SPEC_FULL.md for the full specification.
//
// The package performs no internal locking (spec.md §5): every exported
// method assumes the caller already holds a single coarse mutex for the
// duration of the call. Wrap a *NIB in a mutex-guarded service (see
// package nibd) to expose it concurrently.
package nib

// NIB is the single owned context aggregating the five fixed-size pools,
// the NC FIFO, the prime-DR pointer and the ABR bitmaps described in
// spec.md. Zero value is not usable; construct with New.
type NIB struct {
	cfg Config

	onl      []ONL
	fifoHead int
	fifoTail int

	dr      []DR
	drPrime int

	offl []OFFL

	iface []IfaceRecord

	abr []ABR

	releaser PacketReleaser
}

// New constructs a NIB with the given options applied over the default
// configuration (pool capacities from options.go, all compile-time
// switches off).
func New(opts ...Option) *NIB {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &NIB{
		cfg:      cfg,
		onl:      make([]ONL, cfg.NIBNumof),
		fifoHead: onlNone,
		fifoTail: onlNone,
		dr:       make([]DR, cfg.DefaultRouterNumof),
		drPrime:  onlNone,
		offl:     make([]OFFL, cfg.OFFLNumof),
		iface:    make([]IfaceRecord, cfg.NetifNumof),
	}

	for i := range n.onl {
		n.onl[i].fifoNext = onlNone
	}
	for i := range n.dr {
		n.dr[i].nextHop = onlNone
	}
	for i := range n.offl {
		n.offl[i].nextHop = onlNone
	}
	for i := range n.iface {
		n.iface[i].PID = ifaceUndef
	}

	if cfg.MultihopP6C {
		n.abr = make([]ABR, cfg.ABRNumof)
	}

	return n
}

// SetPacketReleaser wires the collaborator invoked whenever queued
// packets must be dropped. Only meaningful when the NIB was built with
// WithQueuePkt(true).
func (n *NIB) SetPacketReleaser(r PacketReleaser) {
	n.releaser = r
}

func (n *NIB) timer() EventTimer {
	if n.cfg.timer == nil {
		return NullTimer{}
	}
	return n.cfg.timer
}

// Config returns a copy of the NIB's effective configuration.
func (n *NIB) Config() Config {
	return n.cfg
}
