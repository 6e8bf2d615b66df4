// Package util provides the collaborators around the tree optimizer.
//
// It turns a directory into the weighted sequence the optimizer works on and
// back into names the materializer can create:
//
// Entries:
//   - ListEntries enumerates the entries of a directory in German collation
//     order (case and umlauts ignored, so "Äpfel" sorts with "Apfel")
//   - Hidden staging directories of an interrupted run are skipped
//
// Weights:
//   - LoadWeights reads a flat JSON object mapping entry names to weights
//   - ValidateWeights checks overrides against the directory
//   - Items pairs every entry with its weight, 1.0 unless overridden
//
// Naming:
//   - ContainerName builds "<first>-<last>" from the first graphemes of the
//     outermost members of a group
//   - UniqueName resolves collisions with existing entries
//
// Options and reports:
//   - Options holds the command-line configuration shared by all commands
//   - Report is the JSON summary written by "plan --json"
package util
