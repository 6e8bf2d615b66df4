package util

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/baum/tree"
)

func TestDecodeWeights(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]float64
		err      error
	}{
		{name: "empty object", input: `{}`, expected: map[string]float64{}},
		{name: "numbers", input: `{"Archiv": 12, "Bilder": 0.5}`, expected: map[string]float64{"Archiv": 12, "Bilder": 0.5}},
		{name: "duplicate key", input: `{"a": 1, "a": 2}`, expected: map[string]float64{"a": 2}, err: ErrDuplicateEntry},
		{name: "string value", input: `{"a": "3"}`, expected: map[string]float64{}, err: ErrInvalidWeight},
		{name: "nested value", input: `{"a": {"b": 1}, "c": 2}`, expected: map[string]float64{"c": 2}, err: ErrInvalidWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights, err := DecodeWeights(strings.NewReader(tt.input))
			if tt.err == nil && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v but got %v", tt.err, err)
			}
			if len(weights) != len(tt.expected) {
				t.Fatalf("Expected %v but got %v", tt.expected, weights)
			}
			for k, v := range tt.expected {
				if weights[k] != v {
					t.Errorf("Expected weight %g for %q but got %g", v, k, weights[k])
				}
			}
		})
	}
}

func TestDecodeWeightsRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `3`, ``, `{"a": 1`} {
		if _, err := DecodeWeights(strings.NewReader(input)); err == nil {
			t.Errorf("Expected an error for %q", input)
		}
	}
}

func TestLoadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultWeightsFile)
	if err := os.WriteFile(path, []byte(`{"x": 3}`), 0644); err != nil {
		t.Fatal(err)
	}
	weights, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights failed: %v", err)
	}
	if weights["x"] != 3 {
		t.Errorf("Expected weight 3 but got %g", weights["x"])
	}

	_, err = LoadWeights(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error but got %v", err)
	}
}

func TestValidateWeights(t *testing.T) {
	names := []string{"Archiv", "Bilder", "Musik"}
	tests := []struct {
		name    string
		weights map[string]float64
		errs    []error
	}{
		{name: "no overrides", weights: map[string]float64{}},
		{name: "valid", weights: map[string]float64{"Archiv": 2, "Musik": 0.25}},
		{name: "zero", weights: map[string]float64{"Archiv": 0}, errs: []error{ErrInvalidWeight}},
		{name: "negative", weights: map[string]float64{"Bilder": -1}, errs: []error{ErrInvalidWeight}},
		{name: "infinite", weights: map[string]float64{"Bilder": math.Inf(1)}, errs: []error{ErrInvalidWeight}},
		{name: "not a number", weights: map[string]float64{"Bilder": math.NaN()}, errs: []error{ErrInvalidWeight}},
		{name: "unknown", weights: map[string]float64{"Filme": 2}, errs: []error{ErrUnknownEntry}},
		{name: "several problems", weights: map[string]float64{"Filme": 2, "Musik": -3}, errs: []error{ErrUnknownEntry, ErrInvalidWeight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(names, tt.weights)
			if len(tt.errs) == 0 && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, e := range tt.errs {
				if !errors.Is(err, e) {
					t.Errorf("Expected error %v in %v", e, err)
				}
			}
		})
	}
}

func TestValidateWeightsSuggestsCase(t *testing.T) {
	err := ValidateWeights([]string{"Archiv"}, map[string]float64{"archiv": 2})
	if !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("Expected error %v but got %v", ErrUnknownEntry, err)
	}
	if !strings.Contains(err.Error(), `did you mean "Archiv"`) {
		t.Errorf("Expected a suggestion in %q", err.Error())
	}
}

func TestItems(t *testing.T) {
	items := Items([]string{"a", "b", "c"}, map[string]float64{"b": 5, "z": 9})
	expected := []tree.Item{{Name: "a", Weight: 1}, {Name: "b", Weight: 5}, {Name: "c", Weight: 1}}
	if len(items) != len(expected) {
		t.Fatalf("Expected %d items but got %d", len(expected), len(items))
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("Item %d: expected %+v but got %+v", i, expected[i], items[i])
		}
	}
}
