package controller

import (
	"net/http"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

// ShellPage serves the pre-built HTML shell unmodified. It is the downstream
// handler for every page the preview middleware does not rewrite.
type ShellPage struct {
	Shell datasources.ShellLoader
}

func (c ShellPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := c.Shell.LoadShell(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load HTML shell", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if _, err := w.Write([]byte(doc)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write shell to response", "error", err)
	}
}
