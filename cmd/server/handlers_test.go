package main

import (
	"encoding/json"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_strutil/pkg/cosine"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	return newTestServerWithPadLimit(t, 64)
}

func newTestServerWithPadLimit(t *testing.T, maxPadLength int) *server {
	t.Helper()
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })

	similarity, err := cosine.New(cosine.WithLogger(logger))
	if err != nil {
		t.Fatalf("create similarity: %v", err)
	}
	return newServer(logger, similarity, time.Second, maxPadLength)
}

func doRequest(t *testing.T, s *server, method, path, body string, headers ...string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.handle(&ctx)
	return &ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(ctx.Response.Body(), dst); err != nil {
		t.Fatalf("decode response %q: %v", ctx.Response.Body(), err)
	}
}

func TestTransformEndpoints(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		body     string
		expected string
	}{
		{"camelcase", "/camelcase", `{"input":"foo-bar"}`, "fooBar"},
		{"camelcase upper first", "/camelcase", `{"input":"foo-bar","upper_first":true}`, "FooBar"},
		{"hyphenate", "/hyphenate", `{"input":"FooBar"}`, "foo-bar"},
		{"hyphenate separator", "/hyphenate", `{"input":"fooBar","separator":"_"}`, "foo_bar"},
		{"quote", "/quote", `{"input":"say \"hi\""}`, `"say \"hi\""`},
		{"unquote", "/unquote", `{"input":"\"abc\""}`, "abc"},
		{"unquote custom", "/unquote", `{"input":"'abc'","quote_char":"'"}`, "abc"},
		{"format", "/format", `{"template":"{0} and {1} {2}","args":["x",3]}`, "x and 3 {2}"},
		{"pad left", "/pad", `{"value":5,"length":4,"fill":"0"}`, "0005"},
		{"pad right", "/pad", `{"value":"ab","length":5,"fill":"xy","side":"right"}`, "abxyx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := doRequest(t, s, fasthttp.MethodPost, tc.path, tc.body)
			if ctx.Response.StatusCode() != fasthttp.StatusOK {
				t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
			}
			var resp TransformResponse
			decodeBody(t, ctx, &resp)
			if resp.Result != tc.expected {
				t.Errorf("result = %q, want %q", resp.Result, tc.expected)
			}
		})
	}
}

func TestHashEndpoint(t *testing.T) {
	ctx := doRequest(t, newTestServer(t), fasthttp.MethodPost, "/hash", `{"input":"a"}`)
	var resp HashResponse
	decodeBody(t, ctx, &resp)
	if resp.Hash != 97 {
		t.Errorf("hash = %d, want 97", resp.Hash)
	}
}

func TestSimilarityEndpoint(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/similarity", `{"original":"listen","augmented":"silent"}`)
	var resp SimilarityResponse
	decodeBody(t, ctx, &resp)
	if resp.Score != 1 || !resp.Passed || resp.Threshold != 0.7 {
		t.Errorf("unexpected response %+v", resp)
	}

	ctx = doRequest(t, s, fasthttp.MethodPost, "/similarity", `{"original":"ab","augmented":"ac","threshold":0.4}`)
	resp = SimilarityResponse{}
	decodeBody(t, ctx, &resp)
	if resp.Score != 0.5 || !resp.Passed || resp.Threshold != 0.4 {
		t.Errorf("threshold override not applied: %+v", resp)
	}

	ctx = doRequest(t, s, fasthttp.MethodPost, "/similarity", `{"original":"a","augmented":"b","threshold":2}`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		errMsg string
	}{
		{"unknown path", fasthttp.MethodGet, "/nope", "", fasthttp.StatusNotFound, "Not found"},
		{"wrong method", fasthttp.MethodGet, "/quote", "", fasthttp.StatusMethodNotAllowed, "Method not allowed"},
		{"malformed json", fasthttp.MethodPost, "/quote", "{", fasthttp.StatusBadRequest, "Invalid request"},
		{"empty fill", fasthttp.MethodPost, "/pad", `{"value":"a","length":3,"fill":""}`, fasthttp.StatusBadRequest, "invalid argument"},
		{"pad length over server limit", fasthttp.MethodPost, "/pad", `{"value":"a","length":65,"fill":"x"}`, fasthttp.StatusBadRequest, "must not exceed 64"},
		{"pad length max int", fasthttp.MethodPost, "/pad", `{"value":"a","length":9223372036854775807,"fill":"x"}`, fasthttp.StatusBadRequest, "must not exceed"},
		{"bad side", fasthttp.MethodPost, "/pad", `{"value":"a","length":3,"fill":"0","side":"up"}`, fasthttp.StatusBadRequest, "side"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := doRequest(t, s, tc.method, tc.path, tc.body)
			if ctx.Response.StatusCode() != tc.status {
				t.Fatalf("status = %d, want %d", ctx.Response.StatusCode(), tc.status)
			}
			var resp ErrorResponse
			decodeBody(t, ctx, &resp)
			if !strings.Contains(resp.Error, tc.errMsg) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tc.errMsg)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(t, s, fasthttp.MethodGet, "/health", "")
	generated := string(ctx.Response.Header.Peek(RequestIDHeader))
	if len(generated) != 36 {
		t.Errorf("expected generated uuid, got %q", generated)
	}

	ctx = doRequest(t, s, fasthttp.MethodGet, "/health", "", RequestIDHeader, "abc-123")
	if got := string(ctx.Response.Header.Peek(RequestIDHeader)); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestPadWidthRejectedByLibrary(t *testing.T) {
	s := newTestServerWithPadLimit(t, math.MaxInt)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/pad", `{"value":"a","length":9223372036854775807,"fill":"x"}`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
	var resp ErrorResponse
	decodeBody(t, ctx, &resp)
	if !strings.Contains(resp.Error, "invalid argument") {
		t.Errorf("error = %q, want invalid argument", resp.Error)
	}
}
