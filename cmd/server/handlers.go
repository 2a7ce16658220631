package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/baditaflorin/l"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	strutil "github.com/baditaflorin/go_strutil"
	"github.com/baditaflorin/go_strutil/pkg/cosine"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// TransformRequest is the body accepted by the single-string endpoints.
type TransformRequest struct {
	Input      string  `json:"input"`
	UpperFirst bool    `json:"upper_first,omitempty"`
	Separator  *string `json:"separator,omitempty"`
	QuoteChar  *string `json:"quote_char,omitempty"`
}

// TransformResponse carries a transformed string.
type TransformResponse struct {
	Result string `json:"result"`
}

// HashResponse carries a string hash.
type HashResponse struct {
	Hash int32 `json:"hash"`
}

// FormatRequest is the body accepted by /format.
type FormatRequest struct {
	Template string        `json:"template"`
	Args     []interface{} `json:"args"`
}

// PadRequest is the body accepted by /pad.
type PadRequest struct {
	Value  interface{} `json:"value"`
	Length int         `json:"length"`
	Fill   string      `json:"fill"`
	Side   string      `json:"side"`
}

// SimilarityRequest represents a similarity computation request
type SimilarityRequest struct {
	Original  string   `json:"original"`
	Augmented string   `json:"augmented"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// SimilarityResponse represents a similarity computation response
type SimilarityResponse struct {
	Score           float64                `json:"score"`
	Passed          bool                   `json:"passed"`
	OriginalLength  int                    `json:"original_length"`
	AugmentedLength int                    `json:"augmented_length"`
	Threshold       float64                `json:"threshold"`
	ProcessingTime  string                 `json:"processing_time,omitempty"`
	Details         map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// server routes requests to the string utilities.
type server struct {
	logger         l.Logger
	similarity     *cosine.CosineSimilarity
	requestTimeout time.Duration
	// maxPadLength bounds the response /pad may build.
	maxPadLength int
}

func newServer(logger l.Logger, similarity *cosine.CosineSimilarity, requestTimeout time.Duration, maxPadLength int) *server {
	return &server{
		logger:         logger,
		similarity:     similarity,
		requestTimeout: requestTimeout,
		maxPadLength:   maxPadLength,
	}
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "StrutilServer")
	ctx.Response.Header.Set(RequestIDHeader, requestID)

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/camelcase":
		s.handleTransform(ctx, func(req TransformRequest) string {
			return strutil.CamelCase(req.Input, req.UpperFirst)
		})
	case "/hyphenate":
		s.handleTransform(ctx, func(req TransformRequest) string {
			if req.Separator != nil {
				return strutil.HyphenateWith(req.Input, *req.Separator)
			}
			return strutil.Hyphenate(req.Input)
		})
	case "/quote":
		s.handleTransform(ctx, func(req TransformRequest) string {
			return strutil.Quote(req.Input)
		})
	case "/unquote":
		s.handleTransform(ctx, func(req TransformRequest) string {
			if req.QuoteChar != nil {
				return strutil.UnquoteWith(req.Input, *req.QuoteChar)
			}
			return strutil.Unquote(req.Input)
		})
	case "/hash":
		s.handleHash(ctx)
	case "/format":
		s.handleFormat(ctx)
	case "/pad":
		s.handlePad(ctx)
	case "/similarity":
		s.handleSimilarity(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	// Log request
	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	s.writeJSONResponse(ctx, response)
}

func (s *server) handleTransform(ctx *fasthttp.RequestCtx, transform func(TransformRequest) string) {
	var req TransformRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, TransformResponse{Result: transform(req)})
}

func (s *server) handleHash(ctx *fasthttp.RequestCtx) {
	var req TransformRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, HashResponse{Hash: strutil.Hash(req.Input)})
}

func (s *server) handleFormat(ctx *fasthttp.RequestCtx) {
	var req FormatRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, TransformResponse{Result: strutil.Format(req.Template, req.Args...)})
}

func (s *server) handlePad(ctx *fasthttp.RequestCtx) {
	var req PadRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	if req.Length > s.maxPadLength {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, fmt.Sprintf("length must not exceed %d", s.maxPadLength))
		return
	}

	var (
		result string
		err    error
	)
	switch strings.ToLower(req.Side) {
	case "", "left":
		result, err = strutil.PadLeft(req.Value, req.Length, req.Fill)
	case "right":
		result, err = strutil.PadRight(req.Value, req.Length, req.Fill)
	default:
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "side must be 'left' or 'right'")
		return
	}

	if errors.Is(err, strutil.ErrInvalidArgument) {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, err.Error())
		return
	}
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Padding failed", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, TransformResponse{Result: result})
}

// handleSimilarity handles cosine similarity requests
func (s *server) handleSimilarity(ctx *fasthttp.RequestCtx) {
	var req SimilarityRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	// Validate request
	if req.Threshold != nil && (*req.Threshold < 0 || *req.Threshold > 1) {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "threshold must be between 0 and 1")
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), s.requestTimeout)
	defer cancel()

	startTime := time.Now()
	result := s.similarity.Compute(c, req.Original, req.Augmented)

	if req.Threshold != nil {
		result.Threshold = *req.Threshold
		result.Passed = result.Details["error"] == nil && result.Score >= *req.Threshold
	}

	response := SimilarityResponse{
		Score:           result.Score,
		Passed:          result.Passed,
		OriginalLength:  result.OriginalLength,
		AugmentedLength: result.AugmentedLength,
		Threshold:       result.Threshold,
		ProcessingTime:  time.Since(startTime).String(),
		Details:         result.Details,
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, response)
}

// Helper functions

// decodePost enforces POST and decodes the JSON body into dst. It writes the error
// response and returns false when the request is unusable.
func (s *server) decodePost(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return false
	}

	if err := json.Unmarshal(ctx.PostBody(), dst); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
