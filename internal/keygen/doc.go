// Package keygen generates realistic sample key material: signed device-keys
// blocks and one-time keys backed by real Curve25519 and Ed25519 pairs. It
// exists for tests and the CLI sample command; nothing in the marshalling
// layer depends on it.
package keygen
