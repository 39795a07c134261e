package model

// HostInfo is the root-level HOST_INFO descriptor: the device name, the
// address of the underlying OSC transport, and the set of OSCQuery
// extensions the host supports.
//
// No validation is performed on name, IP or port; the caller owns
// correctness of the transport coordinates.
type HostInfo struct {
	// Name is the OSC device name.
	Name string `json:"NAME"`

	// OSCIP is the IP the OSC device listens on.
	OSCIP string `json:"OSC_IP"`

	// OSCPort is the port the OSC device listens on.
	OSCPort uint16 `json:"OSC_PORT"`

	// OSCTransport is the OSC transport kind, "UDP" or "TCP".
	OSCTransport string `json:"OSC_TRANSPORT"`

	// Extensions advertises the supported OSCQuery extensions.
	Extensions Extensions `json:"EXTENSIONS"`
}

// Extensions is the fixed set of eleven OSCQuery capability flags. All
// flags default to false and are enabled individually via the HostInfo
// WithExt* methods.
type Extensions struct {
	Access       bool `json:"ACCESS"`
	Value        bool `json:"VALUE"`
	Range        bool `json:"RANGE"`
	Description  bool `json:"DESCRIPTION"`
	Tags         bool `json:"TAGS"`
	ExtendedType bool `json:"EXTENDED_TYPE"`
	Unit         bool `json:"UNIT"`
	Critical     bool `json:"CRITICAL"`
	Clipmode     bool `json:"CLIPMODE"`
	Listen       bool `json:"LISTEN"`
	PathChanged  bool `json:"PATH_CHANGED"`
}

// NewHostInfo creates a host descriptor with transport "UDP" and all
// extension flags disabled.
func NewHostInfo(name, ip string, port uint16) *HostInfo {
	return &HostInfo{
		Name:         name,
		OSCIP:        ip,
		OSCPort:      port,
		OSCTransport: "UDP",
	}
}

// WithTransport overrides the OSC transport kind.
func (h *HostInfo) WithTransport(transport string) *HostInfo {
	h.OSCTransport = transport
	return h
}

// WithExtAccess enables the ACCESS extension.
func (h *HostInfo) WithExtAccess() *HostInfo {
	h.Extensions.Access = true
	return h
}

// WithExtValue enables the VALUE extension.
func (h *HostInfo) WithExtValue() *HostInfo {
	h.Extensions.Value = true
	return h
}

// WithExtRange enables the RANGE extension.
func (h *HostInfo) WithExtRange() *HostInfo {
	h.Extensions.Range = true
	return h
}

// WithExtDescription enables the DESCRIPTION extension.
func (h *HostInfo) WithExtDescription() *HostInfo {
	h.Extensions.Description = true
	return h
}

// WithExtTags enables the TAGS extension.
func (h *HostInfo) WithExtTags() *HostInfo {
	h.Extensions.Tags = true
	return h
}

// WithExtExtendedType enables the EXTENDED_TYPE extension.
func (h *HostInfo) WithExtExtendedType() *HostInfo {
	h.Extensions.ExtendedType = true
	return h
}

// WithExtUnit enables the UNIT extension.
func (h *HostInfo) WithExtUnit() *HostInfo {
	h.Extensions.Unit = true
	return h
}

// WithExtCritical enables the CRITICAL extension.
func (h *HostInfo) WithExtCritical() *HostInfo {
	h.Extensions.Critical = true
	return h
}

// WithExtClipmode enables the CLIPMODE extension.
func (h *HostInfo) WithExtClipmode() *HostInfo {
	h.Extensions.Clipmode = true
	return h
}

// WithExtListen enables the LISTEN extension.
func (h *HostInfo) WithExtListen() *HostInfo {
	h.Extensions.Listen = true
	return h
}

// WithExtPathChanged enables the PATH_CHANGED extension.
func (h *HostInfo) WithExtPathChanged() *HostInfo {
	h.Extensions.PathChanged = true
	return h
}
