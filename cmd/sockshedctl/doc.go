// Package main provides sockshedctl, the operator CLI for the sockshed
// multi-node proxy server.
//
// The server reads its node configuration once at startup; sockshedctl
// exposes the same pipeline to operators:
//
//	# validate the current document
//	sockshedctl configuration check
//
//	# inspect the resolved node registry
//	sockshedctl configuration show
//	sockshedctl configuration show --output json
//
//	# bootstrap the directory and template document explicitly
//	sockshedctl configuration init
//
// The configuration directory is resolved from a platform table
// (Windows, macOS, Linux). It can be overridden with --config-dir or the
// SOCKSHED_CONFIG_DIR environment variable; a .env file in the working
// directory is honored.
package main
