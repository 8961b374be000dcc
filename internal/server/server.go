package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/carriertrack/internal/graphql"
	"github.com/tournevent/carriertrack/internal/telemetry"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"
)

// Server is the HTTP server for the classification service.
type Server struct {
	port     int
	registry *tracknum.Registry
	logger   *otelzap.Logger
	metrics  *telemetry.Metrics
	resolver *graphql.Resolver
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance.
func New(cfg Config, registry *tracknum.Registry, logger *otelzap.Logger, metrics *telemetry.Metrics) *Server {
	resolver := graphql.NewResolver(registry, logger, metrics)

	return &Server{
		port:     cfg.Port,
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		resolver: resolver,
	}
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", s.handleHealth)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// GraphQL endpoint
	mux.HandleFunc("/graphql", s.handleGraphQL)

	return mux
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// GraphQL request/response types
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   interface{}    `json:"data,omitempty"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeErrors(w, http.StatusMethodNotAllowed, "Method not allowed, use POST")
		return
	}

	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: req.Query})
	if gqlErr != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid query: "+gqlErr.Error())
		return
	}

	op := selectOperation(doc, req.OperationName)
	if op == nil {
		writeErrors(w, http.StatusBadRequest, "Unknown operation")
		return
	}

	ctx := r.Context()
	requestID := uuid.New().String()[:8]
	response := map[string]interface{}{}

	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}

		switch field.Name {
		case "health":
			health, _ := s.resolver.Health(ctx)
			response[field.Alias] = health

		case "carriers":
			carriers, _ := s.resolver.Carriers(ctx)
			response[field.Alias] = carriers

		case "classify":
			number, err := stringArg(field, "number", req.Variables)
			if err != nil {
				writeErrors(w, http.StatusBadRequest, err.Error())
				return
			}
			result, _ := s.resolver.Classify(ctx, number)
			response[field.Alias] = result

		case "trackingUrl":
			number, err := stringArg(field, "number", req.Variables)
			if err != nil {
				writeErrors(w, http.StatusBadRequest, err.Error())
				return
			}
			url, _ := s.resolver.TrackingURL(ctx, number)
			response[field.Alias] = url

		default:
			writeErrors(w, http.StatusBadRequest, fmt.Sprintf("Unknown field %q", field.Name))
			return
		}
	}

	s.logger.Info("Handled GraphQL request",
		zap.String("request_id", requestID),
		zap.String("operation", op.Name),
		zap.Int("fields", len(response)),
	)

	json.NewEncoder(w).Encode(graphQLResponse{Data: response})
}

// selectOperation picks the requested operation, or the only one when no name
// is given.
func selectOperation(doc *ast.QueryDocument, name string) *ast.OperationDefinition {
	if name == "" {
		if len(doc.Operations) == 1 {
			return doc.Operations[0]
		}
		return nil
	}
	for _, op := range doc.Operations {
		if op.Name == name {
			return op
		}
	}
	return nil
}

// stringArg extracts a string argument from a field, resolving variables
// against the request's variable map.
func stringArg(field *ast.Field, name string, vars map[string]interface{}) (string, error) {
	for _, arg := range field.Arguments {
		if arg.Name != name || arg.Value == nil {
			continue
		}
		if arg.Value.Kind == ast.Variable {
			if v, ok := vars[arg.Value.Raw].(string); ok {
				return v, nil
			}
			return "", fmt.Errorf("missing variable $%s", arg.Value.Raw)
		}
		return arg.Value.Raw, nil
	}
	return "", fmt.Errorf("missing required argument %q", name)
}

func writeErrors(w http.ResponseWriter, status int, messages ...string) {
	errs := make([]graphQLError, len(messages))
	for i, m := range messages {
		errs[i] = graphQLError{Message: m}
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(graphQLResponse{Errors: errs})
}
