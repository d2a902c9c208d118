// Package dataset supplies the numeric collaborator a regression task
// consumes: train/test matrices, the input-variable count, and the
// operator function set to register.
//
// Data enters either pre-split (fill the struct directly) or from a CSV
// file whose last column is the target, with a deterministic seeded
// train/test shuffle split. No persistence: datasets are plain
// in-memory values reconstructed per run from configuration.
package dataset
