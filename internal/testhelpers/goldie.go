package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TextGoldie creates a goldie instance for plain text golden files.
func TextGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

// JSONGoldie creates a goldie instance for JSON golden files.
func JSONGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.json"))
}
