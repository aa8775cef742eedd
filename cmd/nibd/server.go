package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yanet-platform/ipv6nib/nibd"
)

var serverCmdArgs struct {
	ConfigPath string
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the nibd gRPC server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			if errors.As(err, new(interrupted)) {
				return
			}
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverCmdArgs.ConfigPath, "config", "c", "", "Path to the configuration file")
}

func loadConfig(path string) (*nibd.Config, error) {
	cfg := nibd.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to deserialize config: %w", err)
	}
	return cfg, nil
}

// interrupted is returned by waitInterrupted when a shutdown signal
// arrives; it carries the signal for logging.
type interrupted struct {
	signal os.Signal
}

func (i interrupted) Error() string {
	return i.signal.String()
}

// waitInterrupted blocks until SIGINT or SIGTERM arrives or ctx is
// canceled.
func waitInterrupted(ctx context.Context) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		return interrupted{signal: sig}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func runServer() error {
	cfg, err := loadConfig(serverCmdArgs.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, _, err := nibd.InitLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Sync()

	svc := nibd.NewService(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Run(ctx, cfg.Endpoint) }()

	if err := waitInterrupted(ctx); err != nil {
		log.Infof("caught signal: %v", err)
		cancel()
		<-errCh
		return err
	}
	return <-errCh
}
