// Package pipeline composes reduction stages into ordered sequences and runs
// them over exposures.
//
// A Stage takes and returns the same container type, so every correction is
// named and independently testable. Registries map stage names to
// implementations; a Reducer builds its cube and spectrum sequences from a
// config.Config recipe and collapses each cube into an image. ReduceAll
// reduces independent exposures concurrently.
package pipeline
