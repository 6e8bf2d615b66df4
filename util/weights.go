package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/dendrascience/baum/tree"
)

// DefaultWeightsFile is the override file looked for when none is given.
const DefaultWeightsFile = "custom-weights.json"

// LoadWeights reads a weights file: a flat JSON object mapping entry names to
// numbers. Keys given more than once are reported with ErrDuplicateEntry,
// values that are not numbers with ErrInvalidWeight.
func LoadWeights(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w, err := DecodeWeights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// DecodeWeights decodes a weights object from r. The object is read token by
// token so repeated keys are not silently collapsed.
func DecodeWeights(r io.Reader) (map[string]float64, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	weights := make(map[string]float64)
	var errs []error
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		num, ok := value.(json.Number)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q has value %v", ErrInvalidWeight, key, value))
			continue
		}
		v, err := num.Float64()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q has value %s", ErrInvalidWeight, key, num))
			continue
		}
		if _, seen := weights[key]; seen {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateEntry, key))
		}
		weights[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return weights, errors.Join(errs...)
}

// ValidateWeights checks weights against the entries of a directory: every
// value must be positive and finite, and every key must name an entry.
// A key that only differs from an entry by case is reported with a hint.
// All problems are returned together.
func ValidateWeights(names []string, weights map[string]float64) error {
	exact := make(map[string]bool, len(names))
	folded := make(map[string]string, len(names))
	for _, n := range names {
		exact[n] = true
		folded[strings.ToLower(n)] = n
	}

	var errs []error
	for _, key := range sortedKeys(weights) {
		v := weights[key]
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %q has weight %g", ErrInvalidWeight, key, v))
		}
		if exact[key] {
			continue
		}
		if match, ok := folded[strings.ToLower(key)]; ok {
			errs = append(errs, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownEntry, key, match))
		} else {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownEntry, key))
		}
	}
	return errors.Join(errs...)
}

// Items pairs every name with its weight. Names without an override get
// tree.DefaultWeight.
func Items(names []string, weights map[string]float64) []tree.Item {
	items := make([]tree.Item, len(names))
	for i, n := range names {
		w, ok := weights[n]
		if !ok {
			w = tree.DefaultWeight
		}
		items[i] = tree.Item{Name: n, Weight: w}
	}
	return items
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortNames(keys)
	return keys
}
