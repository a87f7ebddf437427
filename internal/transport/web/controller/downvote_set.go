package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

type DownvoteSet struct {
	Setter datasources.DownvoteSetter
}

type downvoteSetRequest struct {
	Metadata map[string]any `json:"metadata"`
}

func (c DownvoteSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetType := vars["target_type"]
	targetID := vars["target_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With(
		"target_type", targetType,
		"target_id", targetID,
	))

	var downvoted bool
	switch vars["downvote"] {
	case boolTrue:
		downvoted = true
	case boolFalse:
		downvoted = false
	default:
		logger.ErrorContext(r.Context(), "invalid downvote status", "downvote_status", vars["downvote"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// The body is optional; when present it carries an opaque metadata bag.
	var body downvoteSetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		logger.ErrorContext(ctx, "unable to parse downvote request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := c.Setter.SetDownvote(ctx, targetType, targetID, domain.UserIDFromContext(r.Context()), downvoted, body.Metadata)
	if err != nil {
		logger.ErrorContext(ctx, "unable to set downvote", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
