// Package ipex builds and validates the six-route IPEX exchange-message
// chain (apply, offer, agree, grant, admit, spurn) that moves credentials
// between parties outside the KEL/TEL proper (spec §4.9). Messages are
// self-addressing exn envelopes; builders are pure and synchronous (§5).
package ipex
