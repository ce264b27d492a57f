package stub

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardforge/internal/card"
)

// DefaultRoot is the cards directory used when none is configured
const DefaultRoot = "cards"

// Writer writes rendered stubs below Root
type Writer struct {
	Root string
}

// NewWriter creates a Writer for the given cards directory
func NewWriter(root string) *Writer {
	if root == "" {
		root = DefaultRoot
	}
	return &Writer{Root: root}
}

// Write renders the draft, creates its directory and overwrites any
// existing file at the target path. It returns the written path.
func (w *Writer) Write(d *card.Draft) (string, error) {
	dir := d.Directory(w.Root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating card directory: %w", err)
	}

	path := d.Path(w.Root)
	if err := os.WriteFile(path, []byte(Render(d)), 0644); err != nil {
		return "", fmt.Errorf("error writing card stub: %w", err)
	}

	return path, nil
}
