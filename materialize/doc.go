// Package materialize applies a planned grouping to a directory.
//
// Every group of more than one entry becomes a container directory named
// after its first and last member (see util.ContainerName). Members are moved
// into a hidden staging directory first, which is renamed to its final name
// once all of them are inside, so a failed group is rolled back instead of
// leaving a half-filled container behind.
//
// Progress is broadcast as Events; any number of subscribers may follow a
// run. A dry run publishes the same events without touching the directory.
package materialize
