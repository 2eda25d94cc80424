// Package said implements canonical JSON serialization and the
// self-addressing identifier (SAID) fixpoint: substitute a placeholder,
// serialize, digest, write the digest back.
package said
