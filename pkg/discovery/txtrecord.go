package discovery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeServiceTXT creates the TXT records announced with the
// _oscjson._tcp service.
func EncodeServiceTXT(info *ServiceInfo) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyVersion: strconv.Itoa(TXTVersion),
	}
	if info.OSCPort != 0 {
		txt[TXTKeyOSCPort] = strconv.FormatUint(uint64(info.OSCPort), 10)
	}
	if info.OSCTransport != "" {
		txt[TXTKeyOSCTransport] = info.OSCTransport
	}
	return txt
}

// DecodeServiceTXT parses the TXT records of a browsed _oscjson._tcp
// service back into a ServiceInfo (name and query port come from the
// service record itself, not the TXT data).
func DecodeServiceTXT(txt TXTRecordMap) (*ServiceInfo, error) {
	version, ok := txt[TXTKeyVersion]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}
	if v, err := strconv.Atoi(version); err != nil || v < 1 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyVersion, version)
	}

	info := &ServiceInfo{}
	if portStr, ok := txt[TXTKeyOSCPort]; ok {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyOSCPort, portStr)
		}
		info.OSCPort = uint16(port)
	}
	info.OSCTransport = txt[TXTKeyOSCTransport]
	return info, nil
}

// ToStrings converts the map into the "key=value" slice form used by
// DNS-SD registration, sorted for deterministic announcements.
func (m TXTRecordMap) ToStrings() []string {
	out := make([]string, 0, len(m))
	for key, value := range m {
		out = append(out, key+"="+value)
	}
	sort.Strings(out)
	return out
}

// ParseTXTStrings converts "key=value" strings back into a map.
// Entries without '=' are rejected.
func ParseTXTStrings(records []string) (TXTRecordMap, error) {
	txt := make(TXTRecordMap, len(records))
	for _, record := range records {
		key, value, ok := strings.Cut(record, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTXTRecord, record)
		}
		txt[key] = value
	}
	return txt, nil
}
