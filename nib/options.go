package nib

// Default pool capacities, named after the compile-time switches of the
// same name in spec.md §6.
const (
	DefaultNIBNumof           = 16
	DefaultOFFLNumof          = 16
	DefaultDefaultRouterNumof = 3
	DefaultABRNumof           = 4
	DefaultNetifNumof         = 4
)

// Config collects the compile-time switches and pool capacities of
// spec.md §6. It is built up by functional Options passed to New, the
// idiomatic Go substitute for C preprocessor feature switches.
type Config struct {
	MultihopP6C bool
	ARSM        bool
	Is6LN       bool
	Is6LR       bool
	QueuePkt    bool

	NIBNumof           int
	OFFLNumof          int
	DefaultRouterNumof int
	ABRNumof           int
	NetifNumof         int

	timer EventTimer
	rrp   RRPHook
}

// Option configures a NIB at construction time.
type Option func(*Config)

// WithMultihopP6C enables 6LoWPAN multihop prefix/context distribution:
// the ABR table and its bitmap cascades become active.
func WithMultihopP6C(enabled bool) Option {
	return func(c *Config) { c.MultihopP6C = enabled }
}

// WithARSM enables the address-resolution state machine: ONL records
// carry an explicit link-layer address instead of deriving one from the
// IPv6 address.
func WithARSM(enabled bool) Option {
	return func(c *Config) { c.ARSM = enabled }
}

// With6LN marks this NIB as belonging to a 6LoWPAN node.
func With6LN(enabled bool) Option {
	return func(c *Config) { c.Is6LN = enabled }
}

// With6LR marks this NIB as belonging to a 6LoWPAN router.
func With6LR(enabled bool) Option {
	return func(c *Config) { c.Is6LR = enabled }
}

// WithQueuePkt enables per-ONL queued-packet bookkeeping, released via
// PacketReleaser on eviction or removal.
func WithQueuePkt(enabled bool) Option {
	return func(c *Config) { c.QueuePkt = enabled }
}

// WithNIBCapacity sets the on-link node pool size (NIB_NUMOF).
func WithNIBCapacity(n int) Option {
	return func(c *Config) { c.NIBNumof = n }
}

// WithOFFLCapacity sets the off-link entry pool size (OFFL_NUMOF).
func WithOFFLCapacity(n int) Option {
	return func(c *Config) { c.OFFLNumof = n }
}

// WithDefaultRouterCapacity sets the default router list size
// (DEFAULT_ROUTER_NUMOF).
func WithDefaultRouterCapacity(n int) Option {
	return func(c *Config) { c.DefaultRouterNumof = n }
}

// WithABRCapacity sets the ABR table size (ABR_NUMOF).
func WithABRCapacity(n int) Option {
	return func(c *Config) { c.ABRNumof = n }
}

// WithInterfaceCapacity sets the interface table size (NETIF_NUMOF).
func WithInterfaceCapacity(n int) Option {
	return func(c *Config) { c.NetifNumof = n }
}

// WithEventTimer wires the external event-timer service (C8). If not
// supplied, New uses NullTimer.
func WithEventTimer(timer EventTimer) Option {
	return func(c *Config) { c.timer = timer }
}

// WithRRPHook wires the route-repair/registration-protocol hook
// consulted by GetRoute when no route is found (spec.md §4.4 TODO
// hook).
func WithRRPHook(hook RRPHook) Option {
	return func(c *Config) { c.rrp = hook }
}

func defaultConfig() Config {
	return Config{
		NIBNumof:           DefaultNIBNumof,
		OFFLNumof:          DefaultOFFLNumof,
		DefaultRouterNumof: DefaultDefaultRouterNumof,
		ABRNumof:           DefaultABRNumof,
		NetifNumof:         DefaultNetifNumof,
		timer:              NullTimer{},
	}
}
