// Package cmd provides the command-line interface implementation for baum.
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command:
//   - root: command groups, tracing and version
//   - plan: compute and print a grouping
//   - apply: move the entries of a directory into the planned containers
//   - mount: preview a grouping through a read-only FUSE filesystem
//   - validate: check a weights file against a directory
//   - compare: compare the cost of the construction strategies
//   - seed: create test directories
//
// The commands that plan share the flags bound by bindOptions.
package cmd
