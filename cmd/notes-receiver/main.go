// Command notes-receiver is a local stand-in for the Reflect notes API.
// Point REFLECT_API_URL at it to watch the notes the relay would create.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotePayload mirrors the body the relay posts.
type NotePayload struct {
	Subject         string `json:"subject"`
	ContentMarkdown string `json:"content_markdown"`
	Pinned          bool   `json:"pinned"`
}

func notesHandler(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		var payload NotePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		id := uuid.NewString()
		logger.Info().
			Str("graph", r.PathValue("graphId")).
			Str("id", id).
			Str("subject", payload.Subject).
			Bool("pinned", payload.Pinned).
			Msg(payload.ContentMarkdown)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
	}
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/graphs/{graphId}/notes", notesHandler(logger))
	logger.Info().Str("addr", *addr).Msg("Notes receiver listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("Notes receiver failed")
	}
}
