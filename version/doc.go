// Package version reports which build of baum is running.
//
// Release builds set Version, Commit and Date with -ldflags:
//
//	-ldflags "-X github.com/dendrascience/baum/version.Version=v1.0.0 -X github.com/dendrascience/baum/version.Commit=abc123"
//
// Values left empty are taken from the build info the go tool embeds. Plan
// reports record the full Info so a report can be traced back to the binary
// that produced it.
package version
