// Package inspector serves a small JSON API for decoding and building
// signatures, meant as a debugging endpoint for client teams. Every request
// gets an X-Request-ID and every response error carries it.
package inspector
