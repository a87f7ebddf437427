package shellfile

import (
	"context"
	"fmt"
	"os"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
)

var _ datasources.ShellLoader = (*Loader)(nil)

// Loader reads the pre-built HTML shell from local disk on every call.
type Loader struct {
	Path string
}

func (l *Loader) LoadShell(_ context.Context) (string, error) {
	b, err := os.ReadFile(l.Path)
	if err != nil {
		return "", fmt.Errorf("reading shell template: %w", err)
	}
	return string(b), nil
}
