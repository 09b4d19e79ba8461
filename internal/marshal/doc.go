// Package marshal converts the engine's typed outgoing requests into the
// uniform records handed to the transport caller.
//
// Each of the seven request kinds has a fixed schema: a few scalar fields
// extracted as strings (identifiers, event types) and the rest of the
// payload grouped into one JSON-encoded body object. Outgoing applies the
// schema for a request's kind and wraps the result in the closed Request
// union, preserving the request identifier verbatim.
//
// # Notes
//
// Conversion is a pure, stateless transform: no I/O, no shared state, safe
// for concurrent use on independent inputs. It either fully succeeds or
// fails with a SerializationError; no partial records are produced. Body
// fields are emitted in their declared order, so equal inputs yield
// byte-equal bodies.
package marshal
