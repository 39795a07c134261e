package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/revilo196/oscquery-go/pkg/log"
)

// Advertiser provides mDNS service advertising for an OSCQuery host.
type Advertiser interface {
	// Advertise announces the host's _oscjson._tcp service (and its
	// _osc._udp companion when an OSC port is set). The announcement
	// stays active until Stop.
	Advertise(ctx context.Context, info *ServiceInfo) error

	// Stop withdraws all announcements.
	Stop()
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface selects the network interface to announce on.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL (default: DefaultTTL).
	TTL time.Duration

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{TTL: DefaultTTL}
}

// MDNSAdvertiser implements Advertiser using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig
	logger log.Logger

	mu          sync.Mutex
	queryServer *zeroconf.Server
	oscServer   *zeroconf.Server
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) *MDNSAdvertiser {
	if config.TTL == 0 {
		config.TTL = DefaultTTL
	}
	return &MDNSAdvertiser{
		config: config,
		logger: log.OrNoop(config.Logger),
	}
}

// interfaces returns the network interfaces to announce on, nil for all.
func (a *MDNSAdvertiser) interfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}
	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// Advertise announces the query service. Only one announcement can be
// active at a time.
func (a *MDNSAdvertiser) Advertise(ctx context.Context, info *ServiceInfo) error {
	if err := info.validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.queryServer != nil {
		return ErrAlreadyAdvertising
	}

	opts := []zeroconf.ServerOption{
		zeroconf.TTL(uint32(a.config.TTL.Seconds())),
	}
	ifaces := a.interfaces()
	txt := EncodeServiceTXT(info).ToStrings()

	queryServer, err := zeroconf.Register(
		info.Name,
		ServiceTypeOSCQuery,
		Domain,
		int(info.QueryPort),
		txt,
		ifaces,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", ServiceTypeOSCQuery, err)
	}
	a.queryServer = queryServer

	if info.OSCPort != 0 {
		oscServer, err := zeroconf.Register(
			info.Name,
			ServiceTypeOSC,
			Domain,
			int(info.OSCPort),
			[]string{TXTKeyVersion + "=1"},
			ifaces,
			opts...,
		)
		if err != nil {
			queryServer.Shutdown()
			a.queryServer = nil
			return fmt.Errorf("failed to register %s: %w", ServiceTypeOSC, err)
		}
		a.oscServer = oscServer
	}

	a.logStateChange("idle", "advertising", info.Name)
	return nil
}

// Stop withdraws all announcements. Safe to call more than once.
func (a *MDNSAdvertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.queryServer == nil && a.oscServer == nil {
		return
	}
	if a.queryServer != nil {
		a.queryServer.Shutdown()
		a.queryServer = nil
	}
	if a.oscServer != nil {
		a.oscServer.Shutdown()
		a.oscServer = nil
	}
	a.logStateChange("advertising", "idle", "stopped")
}

func (a *MDNSAdvertiser) logStateChange(from, to, reason string) {
	a.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Layer:       log.LayerDiscovery,
		Category:    log.CategoryStateChange,
		StateChange: &log.StateChangeEvent{From: from, To: to, Reason: reason},
	})
}

// Compile-time interface satisfaction check.
var _ Advertiser = (*MDNSAdvertiser)(nil)
