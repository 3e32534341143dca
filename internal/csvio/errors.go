package csvio

import (
	"fmt"
	"strings"
)

// StructuralError reports an input file whose header is missing expected
// columns. It is fatal for the dataset being processed: individual bad rows
// are skipped softly, but a file without the expected shape cannot be
// validated at all.
type StructuralError struct {
	Path    string
	Missing []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: missing expected columns: %s", e.Path, strings.Join(e.Missing, ", "))
}
