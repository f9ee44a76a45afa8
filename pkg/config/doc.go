// Package config loads and models the operating configuration for the
// sockshed proxy server.
//
// The server runs a set of independently addressable nodes, each with its
// own listening port, certificate-exchange port, client limit,
// authentication scheme and encryption scheme. This package owns the whole
// resolution pipeline: it locates config.json in a platform-dependent
// directory, bootstraps a template document with a freshly generated
// password on first run, parses and strictly validates every node
// definition, and produces an immutable Store consumed by the rest of the
// server at startup.
//
// # Basic Usage
//
//	store, err := config.Load()
//	if err != nil {
//	    // a *FatalError means a node can never bind its port;
//	    // everything else arrives wrapped in *InitError
//	}
//	for _, node := range store.Nodes() {
//	    ...
//	}
//
// # Failure Model
//
// There are no recoverable configuration errors. Every validation failure
// is a deployment mistake that requires operator correction, so Load
// returns an error and produces no partial node list. Port and cert-port
// range violations are reported as *FatalError; all other failures (I/O,
// unparseable document, unknown enum values) are wrapped into *InitError
// with the original cause preserved. The caller, not this package, decides
// whether to terminate the process.
//
// Load runs once at startup. The resulting Store is read-only and the
// package performs no hot reloading.
package config
