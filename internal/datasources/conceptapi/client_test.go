package conceptapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anujkhare/codecrafters-previews/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchConceptMetadata(t *testing.T) {
	cases := []struct {
		name       string
		statusCode int
		body       string
		wantMeta   domain.ConceptMetadata
		wantErr    bool
	}{
		{
			name:       "successful_fetch",
			statusCode: http.StatusOK,
			body:       `{"title": "Network Protocols", "description_markdown": "All about **protocols**."}`,
			wantMeta: domain.ConceptMetadata{
				Title:               "Network Protocols",
				DescriptionMarkdown: "All about **protocols**.",
			},
		},
		{
			name:       "not_found",
			statusCode: http.StatusNotFound,
			body:       `{"error": "no such concept"}`,
			wantErr:    true,
		},
		{
			name:       "malformed_json",
			statusCode: http.StatusOK,
			body:       `{"title": `,
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/concept_data", r.URL.Path)
				assert.Equal(t, "network-protocols", r.URL.Query().Get("id_or_slug"))

				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			meta, err := client.FetchConceptMetadata(context.Background(), "network-protocols")

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMeta, meta)
		})
	}
}

func TestClient_FetchConceptMetadata_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchConceptMetadata(context.Background(), "network-protocols")
	require.Error(t, err)
}
