// Package api provides the HTTP upload surface for the document parser.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lachdavey/ledgerdoc/parser"
	"github.com/lachdavey/ledgerdoc/pdftext"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config   Config
	registry *parser.Registry
	mux      *http.ServeMux
}

// New creates a new API server backed by the given parser registry.
func New(cfg Config, registry *parser.Registry) *Server {
	s := &Server{
		config:   cfg,
		registry: registry,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up the API endpoints
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
// This allows the server to be used with custom http.Server configurations
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleParse accepts a multipart upload — a PDF under "file" or already
// extracted text under "text" — and returns the parsed document as JSON.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	text := r.FormValue("text")
	if text == "" {
		file, _, err := r.FormFile("file")
		if err != nil {
			log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
			http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		text, err = pdftext.ExtractReader(file)
		if err != nil {
			log.Printf("%sError extracting text: %v", s.config.LogPrefix, err)
			http.Error(w, "Could not extract text from file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := parser.ParseDocument(s.registry, text)
	if err != nil {
		s.writeParseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// writeParseError maps the classification failures onto distinct
// user-facing messages so the uploader can tell a wrong file from an
// unusual statement variant.
func (s *Server) writeParseError(w http.ResponseWriter, err error) {
	log.Printf("%sParse failed: %v", s.config.LogPrefix, err)

	switch {
	case errors.Is(err, parser.ErrNoParserMatched):
		http.Error(w, "unrecognized document format", http.StatusUnprocessableEntity)
	case errors.Is(err, parser.ErrEmptyParseResult):
		http.Error(w, "document format recognized but no data could be extracted", http.StatusUnprocessableEntity)
	case errors.Is(err, parser.ErrInputTooLarge):
		http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
