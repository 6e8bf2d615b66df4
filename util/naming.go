package util

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/taigrr/colorhash"
)

var graphemeSetup sync.Once

// Shortcut returns the first n user-perceived characters of s. Combining
// marks and emoji sequences are never cut apart.
func Shortcut(s string, n int) string {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	gs := grapheme.StringFromString(s)
	if gs.Len() <= n {
		return s
	}
	var b strings.Builder
	for i := range n {
		b.WriteString(gs.Nth(i))
	}
	return b.String()
}

// ContainerName names the container of a group after its outermost members:
// the first n graphemes of first, a dash, and the first n graphemes of last.
func ContainerName(first, last string, n int) string {
	return Shortcut(first, n) + "-" + Shortcut(last, n)
}

// UniqueName returns name unless an entry outside members already uses it.
// On a collision a bucket derived from the member names is appended, and a
// counter after that if the result is taken as well. Members do not count as
// collisions since they leave the directory before the container takes their
// place.
func UniqueName(name string, members []string, taken map[string]bool) string {
	free := func(n string) bool {
		return !taken[n] || slices.Contains(members, n)
	}
	if free(name) {
		return name
	}

	bucket := colorhash.HashString(strings.Join(members, "/")) % 1000
	candidate := fmt.Sprintf("%s-%03d", name, bucket)
	for i := 2; !free(candidate); i++ {
		candidate = fmt.Sprintf("%s-%03d-%d", name, bucket, i)
	}
	return candidate
}
