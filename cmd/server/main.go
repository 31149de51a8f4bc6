// Command server exposes the Manchu morphological analyzer as a JSON
// REST API.
//
// Endpoints:
//
//	POST /api/analyze   body: {"sentence":"..."}   -> best-path JSON
//	POST /api/lattice   body: {"sentence":"..."}   -> full lattice JSON
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	manchu "github.com/sj-h4/manchu-morph"
)

type requestBody struct {
	Sentence string `json:"sentence"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		log.Error().Err(err).Msg("encode error")
	}
}

func writeRawJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error().Err(err).Msg("write error")
	}
}

func readSentence(r *http.Request) (string, error) {
	var body requestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Sentence, nil
}

func handleAnalyze(an *manchu.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		sentence, err := readSentence(r)
		if err != nil || sentence == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}

		lat := an.FromSentence(sentence)
		lat.ComputeBestPath()
		out, err := lat.ToBestPathJSON()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeRawJSON(w, http.StatusOK, out)
	}
}

func handleLattice(an *manchu.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		sentence, err := readSentence(r)
		if err != nil || sentence == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}

		lat := an.FromSentence(sentence)
		lat.ComputeBestPath()
		out, err := lat.ToJSON()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeRawJSON(w, http.StatusOK, out)
	}
}

func main() {
	dataDir := flag.String("data", "data", "path to the resource data directory")
	addr := flag.String("addr", ":8080", "listen address")
	verbose := flag.Bool("verbose", false, "log resource-loading and analysis debug events")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	log.Info().Str("dir", *dataDir).Msg("loading data")
	an, err := manchu.New(*dataDir, manchu.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load data")
	}
	log.Info().Msg("data loaded")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(an))
	mux.HandleFunc("/api/lattice", handleLattice(an))

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
