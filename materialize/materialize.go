package materialize

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
	"github.com/google/uuid"
	"github.com/guiguan/caster"
)

// Options controls a run.
type Options struct {
	Shortcut int  // graphemes taken from each outer member for container names
	DryRun   bool // publish events only
}

// Result counts the changes of a run.
type Result struct {
	Containers int
	Moves      int
}

// Materializer applies groupings and broadcasts what it does.
type Materializer struct {
	opts Options
	cast *caster.Caster
}

// New returns a Materializer whose broadcaster stops with ctx.
func New(ctx context.Context, opts Options) *Materializer {
	return &Materializer{
		opts: opts,
		cast: caster.New(ctx),
	}
}

// Apply creates the grouping described by items and table inside dir with a
// Materializer nobody listens to.
func Apply(ctx context.Context, dir string, items []tree.Item, table *tree.Table, opts Options) (Result, error) {
	m := New(ctx, opts)
	defer m.Close()
	return m.Apply(ctx, dir, items, table)
}

// Subscribe returns a channel receiving every event published from now on.
// The channel is closed after Close or when ctx ends. Subscribers must keep
// reading until EventDone, otherwise Apply blocks.
func (m *Materializer) Subscribe(ctx context.Context) (<-chan Event, bool) {
	sub, ok := m.cast.Sub(ctx, 64)
	if !ok {
		return nil, false
	}
	out := make(chan Event)
	go func() {
		defer close(out)
		for msg := range sub {
			if ev, ok := msg.(Event); ok {
				out <- ev
			}
		}
	}()
	return out, true
}

// Close stops the broadcaster and closes all subscriptions.
func (m *Materializer) Close() {
	m.cast.Close()
}

func (m *Materializer) publish(ev Event) {
	ev.DryRun = m.opts.DryRun
	m.cast.Pub(ev)
}

// Apply creates the grouping described by items and table inside dir.
//
// items must be the entries of dir in planning order and table must hold a
// split for their weights. All entries are checked before anything is moved.
// The context is checked before every group; a cancelled run leaves the
// groups finished so far in place.
func (m *Materializer) Apply(ctx context.Context, dir string, items []tree.Item, table *tree.Table) (Result, error) {
	var res Result
	defer m.publish(Event{Kind: EventDone})

	root, err := tree.Expand(items, table)
	if err != nil {
		return res, err
	}
	for _, it := range items {
		if _, err := os.Lstat(filepath.Join(dir, it.Name)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return res, fmt.Errorf("%w: %s", ErrNotInDirectory, filepath.Join(dir, it.Name))
			}
			return res, err
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return res, err
	}
	taken := make(map[string]bool, len(files))
	for _, f := range files {
		taken[f.Name()] = true
	}

	err = m.applyNode(ctx, dir, root, taken, &res)
	return res, err
}

// applyNode groups the children of node inside dir. taken holds the names
// currently present in dir.
func (m *Materializer) applyNode(ctx context.Context, dir string, node *tree.Node, taken map[string]bool, res *Result) error {
	for _, child := range node.Children {
		if child.IsLeaf() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		members := make([]string, len(child.Items))
		for i, it := range child.Items {
			members[i] = it.Name
		}
		name := util.UniqueName(util.ContainerName(child.First().Name, child.Last().Name, m.opts.Shortcut), members, taken)
		target := filepath.Join(dir, name)

		if err := m.group(dir, target, child, res); err != nil {
			return err
		}

		for _, member := range members {
			delete(taken, member)
		}
		taken[name] = true

		// inside the new container only its own members exist
		inner := make(map[string]bool, len(members))
		for _, member := range members {
			inner[member] = true
		}
		if err := m.applyNode(ctx, target, child, inner, res); err != nil {
			return err
		}
	}
	return nil
}

// group moves every item of node from dir into the container target.
func (m *Materializer) group(dir, target string, node *tree.Node, res *Result) error {
	if m.opts.DryRun {
		m.publish(Event{Kind: EventMkdir, Path: target})
		res.Containers++
		for _, it := range node.Items {
			m.publish(Event{Kind: EventMove, Path: filepath.Join(dir, it.Name), Target: filepath.Join(target, it.Name)})
			res.Moves++
		}
		return nil
	}

	staging := filepath.Join(dir, util.StagingPrefix+uuid.NewString())
	if err := os.Mkdir(staging, 0o755); err != nil {
		return err
	}
	m.publish(Event{Kind: EventMkdir, Path: target})
	res.Containers++

	var moved []string
	for _, it := range node.Items {
		src := filepath.Join(dir, it.Name)
		if err := os.Rename(src, filepath.Join(staging, it.Name)); err != nil {
			rollback(dir, staging, moved)
			return err
		}
		moved = append(moved, it.Name)
		m.publish(Event{Kind: EventMove, Path: src, Target: filepath.Join(target, it.Name)})
		res.Moves++
	}

	if _, err := os.Lstat(target); err == nil {
		rollback(dir, staging, moved)
		return fmt.Errorf("%w: %s", ErrContainerExists, target)
	}
	if err := os.Rename(staging, target); err != nil {
		rollback(dir, staging, moved)
		return err
	}
	return nil
}

// rollback moves entries back out of a staging directory and removes it.
func rollback(dir, staging string, moved []string) {
	for i := len(moved) - 1; i >= 0; i-- {
		if err := os.Rename(filepath.Join(staging, moved[i]), filepath.Join(dir, moved[i])); err != nil {
			log.Printf("Warning: could not restore %s: %v", filepath.Join(dir, moved[i]), err)
		}
	}
	if err := os.Remove(staging); err != nil {
		log.Printf("Warning: could not remove staging directory %s: %v", staging, err)
	}
}
