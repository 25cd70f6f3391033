// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package funcevent

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Event is the request a function runtime hands to a handler
type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path,omitempty"`
	Headers               map[string]string `json:"headers,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	Body                  string            `json:"body,omitempty"`
	IsBase64Encoded       bool              `json:"isBase64Encoded,omitempty"`
	RequestContext        RequestContext    `json:"requestContext,omitempty"`
}

type RequestContext struct {
	Identity struct {
		SourceIP string `json:"sourceIp,omitempty"`
	} `json:"identity,omitempty"`
}

// Response is what the runtime turns back into an HTTP reply
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Request converts ev into an *http.Request bound to ctx
func Request(ctx context.Context, ev Event) (*http.Request, error) {
	method := ev.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	path := ev.Path
	if path == "" {
		path = "/"
	}
	u := &url.URL{Path: path}
	if len(ev.QueryStringParameters) > 0 {
		q := url.Values{}
		for k, v := range ev.QueryStringParameters {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	body := ev.Body
	if ev.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode event body: %w", err)
		}
		body = string(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range ev.Headers {
		req.Header.Set(k, v)
	}
	if ip := ev.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}

	return req, nil
}

// Invoke runs h for ev and captures its response
func Invoke(ctx context.Context, h http.Handler, ev Event) (Response, error) {
	req, err := Request(ctx, ev)
	if err != nil {
		return Response{}, err
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	result := rec.Result()
	defer result.Body.Close()

	resp := Response{
		StatusCode: result.StatusCode,
		Headers:    make(map[string]string, len(result.Header)),
	}
	for k, v := range result.Header {
		if len(v) > 0 {
			resp.Headers[k] = v[0]
		}
	}

	raw := rec.Body.Bytes()
	if utf8.Valid(raw) {
		resp.Body = string(raw)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(raw)
		resp.IsBase64Encoded = true
	}

	return resp, nil
}

// Handle returns a raw-JSON entry point for runtimes that pass the event
// as bytes and expect bytes back
func Handle(h http.Handler) func(ctx context.Context, payload []byte) ([]byte, error) {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var ev Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		resp, err := Invoke(ctx, h, ev)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	}
}
