package util

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StagingPrefix marks the temporary directories created while applying a
// grouping. Entries carrying it are left over from an interrupted run.
const StagingPrefix = ".baum-"

// ListEntries returns the names of the entries of dir, sorted the way a
// German reader expects: case-insensitive, umlauts next to their base vowel.
// Names that compare equal under these rules keep a stable byte order.
func ListEntries(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if strings.HasPrefix(f.Name(), StagingPrefix) {
			continue
		}
		names = append(names, f.Name())
	}
	SortNames(names)
	return names, nil
}

// SortNames sorts names in place in the order used by ListEntries.
func SortNames(names []string) {
	c := newCollator()
	slices.SortFunc(names, func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	})
}

func newCollator() *collate.Collator {
	return collate.New(language.German, collate.IgnoreCase, collate.IgnoreDiacritics)
}
