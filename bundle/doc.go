// Package bundle implements the import/export pipeline (spec §4.8 second
// half, §6 bundle format): a bundle of raw events plus metadata, ingested
// with skip-existing and verify options, and the reverse export path that
// reads a chain back out of a store into the same shape.
package bundle
