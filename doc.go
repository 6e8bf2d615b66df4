// Package main provides the baum command-line interface.
//
// baum regroups the entries of a crowded directory into a tree of nested
// containers with at most a fixed number of entries each, chosen so that the
// total weighted cost of reaching every entry is minimal.
//
// The main binary supports multiple subcommands:
//   - plan: Print the grouping of a directory and its cost
//   - apply: Create the containers and move the entries into them
//   - mount: Preview the grouping through a read-only FUSE filesystem
//   - validate: Check a weights file against a directory
//   - compare: Compare the cost of the construction strategies
//   - seed: Generate test directories
package main
