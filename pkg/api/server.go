package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpswagger "github.com/swaggo/http-swagger"

	"github.com/recoforge/recoforge/pkg/posts"
	"github.com/recoforge/recoforge/pkg/scoring"
)

//go:embed openapi.yaml
var openapiSpecYaml string

type Server struct {
	engine      *scoring.Engine[posts.Post]
	logger      *zerolog.Logger
	resultLimit int
	http        http.Server
}

func NewServer(
	logger *zerolog.Logger,
	config *Config,
	engine *scoring.Engine[posts.Post],
	resultLimit int,
) *Server {
	mux := http.NewServeMux()

	server := &Server{
		engine:      engine,
		logger:      logger,
		resultLimit: resultLimit,
		http: http.Server{
			Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler: requestIDMiddleware(logger, corsMiddleware(mux, config.CORSOrigin)),
		},
	}

	// Equivalent of the Go 1.22+ "POST /v1/rank" method pattern,
	// written out for toolchains on Go 1.21.
	mux.HandleFunc("/v1/rank", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		server.RankPosts(w, r)
	})
	server.registerApiDocsHandlers(mux)

	return server
}

func corsMiddleware(next http.Handler, originConfig string) http.Handler {
	origins := strings.Split(originConfig, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestOrigin := r.Header.Get("Origin")

		if len(origins) == 1 && origins[0] == "*" {
			// Allow all origins
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if requestOrigin != "" && slices.Contains(origins, requestOrigin) {
			// CORS doesn't support multiple origins,
			// so we either set the origin in the header or not at all.
			w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestIDMiddleware(logger *zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		l := logger.With().Str("request_id", requestID).Logger()
		l.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Handling request")

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func (s *Server) registerApiDocsHandlers(mux *http.ServeMux) {
	mux.Handle("/docs/", httpswagger.Handler(
		httpswagger.URL("/docs/openapi.yaml"),
	))
	mux.HandleFunc("/docs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")

		_, err := w.Write([]byte(openapiSpecYaml))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			s.logger.Error().Err(err).Msg("response write error")
		}
	})
}

func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	return s.http.Close()
}

type RankRequest struct {
	Items []posts.Post `json:"items"`
	Limit int          `json:"limit,omitempty"`
}

type RankResponse struct {
	Results []scoring.Recommendation[posts.Post] `json:"results"`
}

func (s *Server) RankPosts(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, err, "deserialize rank request")
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > s.resultLimit {
		limit = s.resultLimit
	}

	results, err := s.engine.Rank(r.Context(), req.Items, limit)
	if err != nil {
		s.internalError(w, err, "rank posts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RankResponse{Results: results}); err != nil {
		s.logger.Error().Err(err).Msg("response write error")
	}
}

func (s *Server) internalError(w http.ResponseWriter, err error, msg string) {
	s.logger.Err(err).Msg(msg)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) badRequest(w http.ResponseWriter, err error, msg string) {
	s.logger.Err(err).Msg(msg)
	http.Error(w, err.Error(), http.StatusBadRequest)
}
