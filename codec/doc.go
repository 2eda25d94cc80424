// Package codec implements the base64url and CESR (Composable Event
// Streaming Representation) encodings used to carry raw digests, public
// keys, and signatures as text.
package codec
