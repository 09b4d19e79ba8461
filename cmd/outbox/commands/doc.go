// Package commands defines the outbox CLI.
//
// Commands
//
//   - convert  Read an engine outgoing request (JSON envelope) and print
//     the transport record it marshals to
//   - sample   Build a realistic request of a given kind and print its record
//   - kinds    List the seven request kinds
//
// # Implementation
//
// The CLI is a stand-in for the host binding that would normally consume the
// record union: it exercises the full dispatch path but performs no network
// I/O. Records are printed as JSON on stdout; --verbose adds conversion
// diagnostics on stderr.
package commands
