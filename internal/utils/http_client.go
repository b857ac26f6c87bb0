// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL. Requests whose context
// holds a trace id (see [WithTraceID]) send it in the X-Trace-ID header.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(propagateTraceID)
	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if traceID := TraceIDFromContext(r.Context()); traceID != "" {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
