package nibd

import (
	"github.com/yanet-platform/ipv6nib/nib"
)

// Config is the configuration for the nibd control-plane service.
type Config struct {
	// Logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Endpoint is the gRPC endpoint to listen on (e.g. "localhost:50061").
	Endpoint string `yaml:"endpoint"`

	// NIB holds the pool capacities and compile-time switches forwarded
	// to nib.New via its functional Options.
	NIB NIBConfig `yaml:"nib"`
}

// NIBConfig mirrors the subset of nib.Config exposed as yaml, since
// nib.Option values themselves are not serializable.
type NIBConfig struct {
	NIBNumof          int  `yaml:"onl_numof"`
	OFFLNumof         int  `yaml:"offl_numof"`
	DefaultRouterNumof int `yaml:"dr_numof"`
	ABRNumof          int  `yaml:"abr_numof"`
	NetifNumof        int  `yaml:"iface_numof"`

	MultihopP6C bool `yaml:"multihop_p6c"`
	ARSM        bool `yaml:"arsm"`
	SixLN       bool `yaml:"six_ln"`
	SixLR       bool `yaml:"six_lr"`
	QueuePkt    bool `yaml:"queue_pkt"`
}

// Options translates the yaml-serializable NIBConfig into the
// functional nib.Options New expects.
func (c NIBConfig) Options() []nib.Option {
	opts := []nib.Option{
		nib.WithMultihopP6C(c.MultihopP6C),
		nib.WithARSM(c.ARSM),
		nib.With6LN(c.SixLN),
		nib.With6LR(c.SixLR),
		nib.WithQueuePkt(c.QueuePkt),
	}
	if c.NIBNumof > 0 {
		opts = append(opts, nib.WithNIBCapacity(c.NIBNumof))
	}
	if c.OFFLNumof > 0 {
		opts = append(opts, nib.WithOFFLCapacity(c.OFFLNumof))
	}
	if c.DefaultRouterNumof > 0 {
		opts = append(opts, nib.WithDefaultRouterCapacity(c.DefaultRouterNumof))
	}
	if c.ABRNumof > 0 {
		opts = append(opts, nib.WithABRCapacity(c.ABRNumof))
	}
	if c.NetifNumof > 0 {
		opts = append(opts, nib.WithInterfaceCapacity(c.NetifNumof))
	}
	return opts
}

// DefaultConfig returns the default nibd configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging:  DefaultLoggingConfig(),
		Endpoint: "[::1]:50061",
		NIB: NIBConfig{
			NIBNumof:           512,
			OFFLNumof:          128,
			DefaultRouterNumof: 8,
			ABRNumof:           8,
			NetifNumof:         16,
			QueuePkt:           true,
		},
	}
}
