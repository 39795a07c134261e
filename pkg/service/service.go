package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/revilo196/oscquery-go/pkg/log"
	"github.com/revilo196/oscquery-go/pkg/model"
	"github.com/revilo196/oscquery-go/pkg/osc"
)

// Query-string attributes understood by the query surface.
const (
	AttrHostInfo = "HOST_INFO"
	AttrValue    = "VALUE"
	AttrType     = "TYPE"
)

// ErrUnsupportedQuery is returned for a query-string attribute outside
// the supported set. The HTTP layer maps it to 204 No Content.
var ErrUnsupportedQuery = errors.New("unsupported query attribute")

// ErrNoHostInfo is returned for a HOST_INFO query against a node that
// carries no host descriptor. The HTTP layer maps it to 404.
var ErrNoHostInfo = errors.New("no host info at this address")

// Service answers OSCQuery namespace queries against an immutable tree.
// The tree must be fully built before the service is created; all
// operations are read-only and safe for concurrent use.
type Service struct {
	root   *model.Node
	logger log.Logger
}

// New creates a query service over a built tree. logger may be nil.
func New(root *model.Node, logger log.Logger) *Service {
	return &Service{root: root, logger: log.OrNoop(logger)}
}

// Query resolves an OSC address path and an optional query attribute to
// a JSON response body.
//
//	""          the full serialized node
//	HOST_INFO   only the host descriptor
//	VALUE       {"VALUE": [...]} (empty array for a channel-less node)
//	TYPE        {"TYPE": "..."}  (empty string for a channel-less node)
//
// A path that does not resolve fails with *model.BadAddressError; an
// attribute outside the set fails with ErrUnsupportedQuery. Status
// mapping is left to the transport layer.
func (s *Service) Query(path, attribute string) ([]byte, error) {
	node, err := s.root.Get(path)
	if err != nil {
		return nil, err
	}

	switch attribute {
	case "":
		return json.Marshal(node)
	case AttrHostInfo:
		info := node.HostInfo()
		if info == nil {
			return nil, ErrNoHostInfo
		}
		return json.Marshal(info)
	case AttrValue:
		body := struct {
			Value []any `json:"VALUE"`
		}{osc.EncodeValues(node.Values())}
		return json.Marshal(body)
	case AttrType:
		body := struct {
			Type string `json:"TYPE"`
		}{node.TypeString()}
		return json.Marshal(body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuery, attribute)
	}
}

// ServeHTTP answers one namespace query, mapping core errors to
// protocol-level status codes:
//
//	bad address          404 Not Found
//	missing host info    404 Not Found
//	unsupported query    204 No Content
//	non-GET method       405 Method Not Allowed
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	connID := uuid.NewString()

	s.logger.Log(log.Event{
		Timestamp:    start,
		ConnectionID: connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerHTTP,
		Category:     log.CategoryQuery,
		RemoteAddr:   r.RemoteAddr,
		Query: &log.QueryEvent{
			Method:    r.Method,
			Path:      r.URL.Path,
			Attribute: r.URL.RawQuery,
		},
	})

	if r.Method != http.MethodGet {
		s.reply(w, r, connID, start, http.StatusMethodNotAllowed, nil)
		return
	}

	body, err := s.Query(r.URL.Path, r.URL.RawQuery)
	switch {
	case err == nil:
		s.reply(w, r, connID, start, http.StatusOK, body)
	case errors.Is(err, ErrUnsupportedQuery):
		s.reply(w, r, connID, start, http.StatusNoContent, nil)
	case isNotFound(err):
		s.logError(connID, r, err)
		s.reply(w, r, connID, start, http.StatusNotFound, nil)
	default:
		s.logError(connID, r, err)
		s.reply(w, r, connID, start, http.StatusInternalServerError, nil)
	}
}

func isNotFound(err error) bool {
	var badAddr *model.BadAddressError
	return errors.As(err, &badAddr) || errors.Is(err, ErrNoHostInfo)
}

func (s *Service) reply(w http.ResponseWriter, r *http.Request, connID string, start time.Time, status int, body []byte) {
	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if body != nil {
		_, _ = w.Write(body)
	}

	s.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    log.DirectionOut,
		Layer:        log.LayerHTTP,
		Category:     log.CategoryResponse,
		RemoteAddr:   r.RemoteAddr,
		Response: &log.ResponseEvent{
			Status:         status,
			Size:           len(body),
			ProcessingTime: time.Since(start),
		},
	})
}

func (s *Service) logError(connID string, r *http.Request, err error) {
	s.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerHTTP,
		Category:     log.CategoryError,
		RemoteAddr:   r.RemoteAddr,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Path:    r.URL.Path,
		},
	})
}

// Compile-time interface satisfaction check.
var _ http.Handler = (*Service)(nil)
