// Package service exposes an OSCQuery namespace over HTTP.
//
// The core contract is Service.Query: it takes an OSC address path and
// an optional query-string attribute and returns a JSON response body.
// The HTTP layer around it is thin glue: Service implements
// http.Handler, and Server wraps it with listener lifecycle and
// graceful shutdown.
//
// # Query Surface
//
//	GET /group/test            full serialized node
//	GET /group/test?VALUE      {"VALUE":[...]}
//	GET /group/test?TYPE       {"TYPE":"..."}
//	GET /?HOST_INFO            host descriptor object
//
// Unknown paths map to 404, unsupported query attributes to 204 No
// Content, non-GET methods to 405.
//
// # Build Then Serve
//
// The tree handed to New must be fully constructed; the service only
// ever reads it, so concurrent requests need no locking. Live updates
// require replacing the service with one built around a new tree.
package service
