package dictionary

import "fmt"

// Status lines reported to the user.
const (
	StatusImportFailed = "import failed"
	StatusExported     = "exported"
)

// StatusImported reports a successful import of n entries.
func StatusImported(n int) string { return fmt.Sprintf("imported %d entries", n) }

// StatusListed reports a listing of shown out of total entries. An unfiltered
// listing only reports the total.
func StatusListed(shown, total int, filtered bool) string {
	if !filtered {
		return fmt.Sprintf("%d entries", total)
	}
	return fmt.Sprintf("%d / %d shown", shown, total)
}
