// Package discovery advertises an OSCQuery host on the local network
// via mDNS/DNS-SD.
//
// An OSCQuery host announces two services: "_oscjson._tcp" for the
// HTTP query side and, when an OSC port is configured, "_osc._udp" for
// the OSC side. Browsers resolve the _oscjson service, fetch "/" from
// the advertised port, and walk the namespace from there.
//
// The package follows the build-then-serve discipline of the rest of
// the module: advertising starts after the tree is built and the HTTP
// server is bound, and stops on shutdown.
package discovery
