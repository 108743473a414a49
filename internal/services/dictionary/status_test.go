package dictionary_test

import (
	"testing"

	"decoder/internal/services/dictionary"
)

func TestStatusLines(t *testing.T) {
	for got, want := range map[string]string{
		dictionary.StatusImported(3):           "imported 3 entries",
		dictionary.StatusListed(2, 10, true):   "2 / 10 shown",
		dictionary.StatusListed(10, 10, false): "10 entries",
	} {
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}
