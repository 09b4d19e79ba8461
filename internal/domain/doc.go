// Package domain defines the data model shared between the encryption
// engine's outgoing requests and the marshalling layer. It contains plain
// types (identifiers, key material, request payloads) only.
package domain
