package log

import (
	"time"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the HTTP connection or advertisement
	// session (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// RemoteAddr is the peer address (IP:port), when known.
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Query       *QueryEvent       `cbor:"7,keyasint,omitempty"`  // Incoming query
	Response    *ResponseEvent    `cbor:"8,keyasint,omitempty"`  // Outgoing response
	StateChange *StateChangeEvent `cbor:"9,keyasint,omitempty"`  // Advertisement state
	Error       *ErrorEventData   `cbor:"10,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer identifies where in the stack an event was captured.
type Layer uint8

const (
	// LayerHTTP is the OSCQuery HTTP query surface.
	LayerHTTP Layer = 0
	// LayerDiscovery is the mDNS advertisement layer.
	LayerDiscovery Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerHTTP:
		return "HTTP"
	case LayerDiscovery:
		return "DISCOVERY"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryQuery is an incoming namespace query.
	CategoryQuery Category = 0
	// CategoryResponse is an outgoing query response.
	CategoryResponse Category = 1
	// CategoryStateChange is a lifecycle or advertisement state change.
	CategoryStateChange Category = 2
	// CategoryError is an error at any layer.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryQuery:
		return "QUERY"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryStateChange:
		return "STATE_CHANGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// QueryEvent captures an incoming namespace query.
type QueryEvent struct {
	// Method is the HTTP method.
	Method string `cbor:"1,keyasint"`

	// Path is the queried OSC address.
	Path string `cbor:"2,keyasint"`

	// Attribute is the query-string attribute (HOST_INFO, VALUE,
	// TYPE), empty for a full node query.
	Attribute string `cbor:"3,keyasint,omitempty"`
}

// ResponseEvent captures an outgoing query response.
type ResponseEvent struct {
	// Status is the HTTP status code.
	Status int `cbor:"1,keyasint"`

	// Size is the response body size in bytes.
	Size int `cbor:"2,keyasint"`

	// ProcessingTime is the handler duration.
	ProcessingTime time.Duration `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures a server or advertisement state change.
type StateChangeEvent struct {
	// From is the previous state name.
	From string `cbor:"1,keyasint"`

	// To is the new state name.
	To string `cbor:"2,keyasint"`

	// Reason describes what triggered the change.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Path is the OSC address involved, when known.
	Path string `cbor:"2,keyasint,omitempty"`
}
