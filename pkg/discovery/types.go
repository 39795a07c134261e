package discovery

import (
	"errors"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeOSCQuery is the DNS-SD service type of the HTTP query
	// surface.
	ServiceTypeOSCQuery = "_oscjson._tcp"

	// ServiceTypeOSC is the DNS-SD service type of the OSC transport.
	ServiceTypeOSC = "_osc._udp"

	// Domain is the mDNS domain.
	Domain = "local"
)

// TXT record key constants.
const (
	// TXTKeyVersion is the TXT record schema version key.
	TXTKeyVersion = "txtvers"

	// TXTKeyOSCPort carries the OSC port on the _oscjson service so
	// browsers can pair the two sides without a second resolve.
	TXTKeyOSCPort = "osc_port"

	// TXTKeyOSCTransport carries the OSC transport kind ("UDP"/"TCP").
	TXTKeyOSCTransport = "osc_transport"
)

// TXTVersion is the advertised TXT record schema version.
const TXTVersion = 1

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// DefaultTTL is the default DNS record TTL.
	DefaultTTL = 120 * time.Second
)

// Discovery errors.
var (
	ErrInstanceNameEmpty   = errors.New("instance name is empty")
	ErrInstanceNameTooLong = errors.New("instance name exceeds 63 characters")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record format")
	ErrMissingRequired     = errors.New("missing required TXT field")
	ErrAlreadyAdvertising  = errors.New("service already advertising")
	ErrMissingPort         = errors.New("query port is required")
)

// ServiceInfo describes one advertised OSCQuery host.
type ServiceInfo struct {
	// Name is the mDNS instance name shown to browsers.
	Name string

	// QueryPort is the port of the HTTP query surface.
	QueryPort uint16

	// OSCPort is the port of the OSC transport; 0 disables the
	// _osc._udp announcement.
	OSCPort uint16

	// OSCTransport is the OSC transport kind, defaulting to "UDP".
	OSCTransport string
}

// validate checks the announcement fields against the DNS-SD limits.
func (i *ServiceInfo) validate() error {
	if i.Name == "" {
		return ErrInstanceNameEmpty
	}
	if len(i.Name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	if i.QueryPort == 0 {
		return ErrMissingPort
	}
	return nil
}
