// Package nibd is the control-plane wrapper around a *nib.NIB: it owns
// the single coarse mutex spec.md §5 requires of callers, exposes the
// mutation API over plain Go methods for the ND protocol engine to
// drive directly in-process, and serves a read-only gRPC snapshot
// service (nibpb.NIBServiceServer) for external inspection.
package nibd

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yanet-platform/ipv6nib/nib"
	"github.com/yanet-platform/ipv6nib/nib/nud"
	"github.com/yanet-platform/ipv6nib/nibpb"
)

// Service guards a *nib.NIB with a single mutex and serves it over
// gRPC. It is the "external mutex wraps that value" piece spec.md §9's
// design notes call for.
type Service struct {
	nibpb.UnimplementedNIBServiceServer

	mu    sync.Mutex
	nib   *nib.NIB
	start time.Time
	log   *zap.SugaredLogger
}

// NewService constructs a Service around a freshly built NIB.
func NewService(cfg *Config, log *zap.SugaredLogger) *Service {
	s := &Service{
		nib:   nib.New(cfg.NIB.Options()...),
		start: time.Now(),
		log:   log,
	}
	s.nib.SetPacketReleaser(nib.PacketReleaserFunc(func(pkt nib.QueuedPacket, reason nib.DropReason) {
		s.log.Debugw("releasing queued packet", "reason", reason)
	}))
	return s
}

// nowMS returns milliseconds elapsed since the service started, the
// clock nib's absolute-deadline fields (OFFL.Preferred/Valid) are
// relative to.
func (s *Service) nowMS() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

// AddNeighbor registers or refreshes a neighbor-cache entry.
func (s *Service) AddNeighbor(addr string, iface uint16, state nud.State) error {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nib.AddNC(a, iface, state); !ok {
		return nib.ErrPoolFull
	}
	return nil
}

// QueuePacket buffers pkt on the neighbor-cache entry for addr/iface
// pending address resolution, returning ErrNoRoute if no such entry
// exists.
func (s *Service) QueuePacket(addr string, iface uint16, pkt nib.QueuedPacket) error {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.nib.ONLGet(a, iface)
	if !ok {
		return nib.ErrNoRoute
	}
	if !s.nib.QueuePacket(e, pkt) {
		return fmt.Errorf("nibd: packet queueing is disabled for this NIB")
	}
	return nil
}

// RemoveNeighbor drops a neighbor-cache entry.
func (s *Service) RemoveNeighbor(addr string, iface uint16) error {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.nib.ONLGet(a, iface)
	if !ok {
		return nib.ErrNoRoute
	}
	s.nib.RemoveNC(e)
	return nil
}

// AddDefaultRouter installs a default router.
func (s *Service) AddDefaultRouter(addr string, iface uint16) error {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.nib.DRLAdd(a, iface)
	return err
}

// RemoveDefaultRouter removes a default router.
func (s *Service) RemoveDefaultRouter(addr string, iface uint16) error {
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.nib.DRLGet(a, iface)
	if !ok {
		return nib.ErrNoRoute
	}
	s.nib.DRLRemove(d)
	return nil
}

// AddRoute installs an off-link prefix (mode FT or RPL).
func (s *Service) AddRoute(nextHop string, iface uint16, prefix string, pfxLen uint8, kind nib.Mode) error {
	nh, err := netip.ParseAddr(nextHop)
	if err != nil {
		return err
	}
	p, err := netip.ParseAddr(prefix)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.nib.OFFLAdd(nh, true, iface, p, pfxLen, kind)
	return err
}

// AddPrefixListEntry installs a PL entry (RFC 4861 Prefix Information
// option), converting wire lifetimes relative to the service's clock.
func (s *Service) AddPrefixListEntry(nextHop string, iface uint16, prefix string, pfxLen uint8, preferredSec, validSec uint32) error {
	nh, err := netip.ParseAddr(nextHop)
	if err != nil {
		return err
	}
	p, err := netip.ParseAddr(prefix)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.nib.PLAdd(nh, true, iface, p, pfxLen, preferredSec, validSec, s.nowMS())
	return err
}

// resolveRoute resolves the forwarding decision for dst.
func (s *Service) resolveRoute(dst string) (nib.FT, error) {
	d, err := netip.ParseAddr(dst)
	if err != nil {
		return nib.FT{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var ft nib.FT
	err = s.nib.GetRoute(d, nil, &ft)
	return ft, err
}

// ListNeighbors implements nibpb.NIBServiceServer.
func (s *Service) ListNeighbors(ctx context.Context, _ *nibpb.ListNeighborsRequest) (*nibpb.ListNeighborsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &nibpb.ListNeighborsResponse{}
	var nc nib.NC
	e, ok := s.nib.ONLIterate(nil)
	for ok {
		if s.nib.NCGet(e, &nc) {
			resp.Neighbors = append(resp.Neighbors, &nibpb.Neighbor{
				Address:  nc.Addr.String(),
				Iface:    uint32(e.Iface),
				NUDState: nc.NUDState.String(),
				ARState:  nc.ARState.String(),
				LLAddr:   nc.LLAddr[:nc.LLAddrLen],
			})
		}
		e, ok = s.nib.ONLIterate(e)
	}
	return resp, nil
}

// ListDefaultRouters implements nibpb.NIBServiceServer.
func (s *Service) ListDefaultRouters(ctx context.Context, _ *nibpb.ListDefaultRoutersRequest) (*nibpb.ListDefaultRoutersResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &nibpb.ListDefaultRoutersResponse{}
	d, ok := s.nib.DRLIterate(nil)
	for ok {
		var ft nib.FT
		if s.nib.DRLFTGet(d, &ft) {
			resp.Routers = append(resp.Routers, &nibpb.DefaultRouter{
				Address:   ft.NextHop.String(),
				Iface:     uint32(ft.Iface),
				Reachable: s.nib.DRReachable(d),
				Primary:   ft.Primary,
			})
		}
		d, ok = s.nib.DRLIterate(d)
	}
	return resp, nil
}

// ListRoutes implements nibpb.NIBServiceServer.
func (s *Service) ListRoutes(ctx context.Context, _ *nibpb.ListRoutesRequest) (*nibpb.ListRoutesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &nibpb.ListRoutesResponse{}
	o, ok := s.nib.OFFLIterate(nil)
	for ok {
		route := &nibpb.Route{
			Dst: fmt.Sprintf("%s/%d", o.Prefix, o.PfxLen),
		}
		if nh, iface, hasNextHop := s.nib.OFFLNextHop(o); hasNextHop {
			route.NextHop = nh.String()
			route.Iface = uint32(iface)
		}
		resp.Routes = append(resp.Routes, route)
		o, ok = s.nib.OFFLIterate(o)
	}
	return resp, nil
}

// ListABRs implements nibpb.NIBServiceServer.
func (s *Service) ListABRs(ctx context.Context, _ *nibpb.ListABRsRequest) (*nibpb.ListABRsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &nibpb.ListABRsResponse{}
	a, ok := s.nib.ABRIterate(nil)
	for ok {
		entry := &nibpb.ABR{Address: a.Addr.String()}
		p, pok := s.nib.ABRIterPfx(a, nil)
		for pok {
			entry.Prefixes = append(entry.Prefixes, fmt.Sprintf("%s/%d", p.Prefix, p.PfxLen))
			p, pok = s.nib.ABRIterPfx(a, p)
		}
		resp.ABRs = append(resp.ABRs, entry)
		a, ok = s.nib.ABRIterate(a)
	}
	return resp, nil
}

// GetRoute implements nibpb.NIBServiceServer.
func (s *Service) GetRoute(ctx context.Context, req *nibpb.GetRouteRequest) (*nibpb.GetRouteResponse, error) {
	ft, err := s.resolveRoute(req.Dst)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "get route: %v", err)
	}
	return &nibpb.GetRouteResponse{
		Route: &nibpb.Route{
			Dst:     ft.Dst.String(),
			NextHop: ft.NextHop.String(),
			Iface:   uint32(ft.Iface),
			Primary: ft.Primary,
		},
	}, nil
}

// Run starts the gRPC server and blocks until ctx is canceled.
func (s *Service) Run(ctx context.Context, endpoint string) error {
	listener, err := net.Listen("tcp", endpoint)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", endpoint, err)
	}

	server := grpc.NewServer()
	nibpb.RegisterNIBServiceServer(server, s)

	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		s.log.Infow("nibd gRPC server listening", "endpoint", endpoint)
		return server.Serve(listener)
	})
	wg.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutting down nibd gRPC server")
		server.GracefulStop()
		return ctx.Err()
	})

	return wg.Wait()
}
