// Package log provides structured protocol logging for the OSCQuery
// server.
//
// The Logger interface and Event types capture protocol-level events at
// the HTTP query layer and the mDNS discovery layer. This is separate
// from operational logging (slog): protocol capture yields a complete
// machine-readable trace of queries, responses and advertisement state
// changes for debugging and analysis.
//
// # Basic Usage
//
// Components accept a Logger; pass nil or NoopLogger to disable capture:
//
//	// Development: events on the console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// Production: binary event file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/oscquery/server.qlog")
//
//	// Both at once
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys
// (.qlog extension by convention). Reader iterates a file with optional
// filtering.
package log
