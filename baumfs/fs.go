package baumfs

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
)

// FS implements the preview filesystem
type FS struct {
	Source  string // absolute path of the directory being previewed
	root    *Dir
	created time.Time
	inodes  uint64
}

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
	_ fs.NodeReadlinker     = (*Link)(nil)
)

// NewFS builds the preview of grouping root for the entries of source.
// Containers are named like the materializer names them, so names already
// present in source, planned or not, are avoided.
func NewFS(source string, root *tree.Node, shortcut int) (*FS, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, err
	}
	files, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}
	f := &FS{
		Source:  abs,
		created: time.Now(),
	}
	f.root = f.newDir()

	taken := make(map[string]bool, len(files)+len(root.Items))
	for _, f := range files {
		taken[f.Name()] = true
	}
	for _, it := range root.Items {
		taken[it.Name] = true
	}
	if root.IsLeaf() {
		f.root.add(root.First().Name, f.newLink(root.First().Name))
		return f, nil
	}
	f.build(f.root, root, taken, shortcut)
	return f, nil
}

func (f *FS) build(d *Dir, node *tree.Node, taken map[string]bool, shortcut int) {
	for _, child := range node.Children {
		if child.IsLeaf() {
			name := child.First().Name
			d.add(name, f.newLink(name))
			continue
		}
		members := make([]string, len(child.Items))
		for i, it := range child.Items {
			members[i] = it.Name
			delete(taken, it.Name)
		}
		name := util.UniqueName(util.ContainerName(child.First().Name, child.Last().Name, shortcut), members, taken)
		taken[name] = true

		sub := f.newDir()
		inner := make(map[string]bool, len(members))
		for _, m := range members {
			inner[m] = true
		}
		f.build(sub, child, inner, shortcut)
		d.add(name, sub)
	}
}

func (f *FS) nextInode() uint64 {
	f.inodes++
	return f.inodes
}

func (f *FS) newDir() *Dir {
	return &Dir{
		fs:     f,
		inode:  f.nextInode(),
		byName: make(map[string]fs.Node),
	}
}

func (f *FS) newLink(name string) *Link {
	return &Link{
		fs:     f,
		inode:  f.nextInode(),
		target: filepath.Join(f.Source, name),
	}
}

// Root returns the root directory node
func (f *FS) Root() (fs.Node, error) {
	return f.root, nil
}

// Dir is a planned container.
type Dir struct {
	fs      *FS
	inode   uint64
	dirents []fuse.Dirent
	byName  map[string]fs.Node
}

func (d *Dir) add(name string, n fs.Node) {
	de := fuse.Dirent{Name: name}
	switch n := n.(type) {
	case *Dir:
		de.Inode = n.inode
		de.Type = fuse.DT_Dir
	case *Link:
		de.Inode = n.inode
		de.Type = fuse.DT_Link
	}
	d.dirents = append(d.dirents, de)
	d.byName[name] = n
}

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = d.inode
	a.Mode = os.ModeDir | 0o555
	a.Mtime = d.fs.created
	a.Ctime = d.fs.created
	a.Atime = d.fs.created
	return nil
}

// Lookup resolves a name inside the container.
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if n, ok := d.byName[name]; ok {
		return n, nil
	}
	return nil, syscall.ENOENT
}

// ReadDirAll lists the container in planning order.
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	return d.dirents, nil
}

// Link points at a real entry of the source directory.
type Link struct {
	fs     *FS
	inode  uint64
	target string
}

// Attr returns symlink attributes
func (l *Link) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = l.inode
	a.Mode = os.ModeSymlink | 0o777
	a.Size = uint64(len(l.target))
	a.Mtime = l.fs.created
	a.Ctime = l.fs.created
	a.Atime = l.fs.created
	return nil
}

// Readlink returns the absolute path of the real entry.
func (l *Link) Readlink(ctx context.Context, req *fuse.ReadlinkRequest) (string, error) {
	return l.target, nil
}
