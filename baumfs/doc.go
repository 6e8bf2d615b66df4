// Package baumfs implements a read-only FUSE view of a planned grouping.
//
// The view shows the directory the way it would look after the grouping is
// applied, without moving anything: containers appear as directories and
// every entry appears as a symbolic link to the real entry, which stays
// where it is. Unmounting leaves no trace.
//
// The main entry point is NewFS() which creates a filesystem that can be
// mounted using the bazil.org/fuse library.
package baumfs
