// Copyright © 2026 Yoshiki Shibata. All rights reserved.

// Package httpfeed is the HTTP-transport collaborator the distilled spec
// externalizes: it feeds the tail of an HTTP response body into a
// lazy.StreamSequence as it arrives, one read() worth of bytes per chunk,
// instrumented with an OpenTelemetry span and structured logging the way
// kbukum-gokit's observability package wires both.
package httpfeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lazyseq/lazy"
	"github.com/lazyseq/lazy/internal/obslog"
)

const tracerName = "github.com/lazyseq/lazy/internal/httpfeed"

// Option configures a feed.
type Option func(*config)

type config struct {
	client    *http.Client
	chunkSize int
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) { cfg.client = c }
}

// WithChunkSize overrides the default read buffer size in bytes.
func WithChunkSize(n int) Option {
	return func(cfg *config) { cfg.chunkSize = n }
}

// New issues a GET to url and returns a StreamSequence over the chunks of
// its response body, read as they arrive. Iterating the returned sequence
// drains the request; it is safe to call only once, same as any other
// channel-backed lazy.StreamSequence.
func New(ctx context.Context, url string, opts ...Option) (lazy.StreamSequence, error) {
	cfg := config{client: http.DefaultClient, chunkSize: 4096}
	for _, opt := range opts {
		opt(&cfg)
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "httpfeed.fetch")
	span.SetAttributes(attribute.String("http.url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, fmt.Errorf("httpfeed: building request: %w", err)
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, fmt.Errorf("httpfeed: fetching %s: %w", url, err)
	}

	ch := make(chan string)
	go func() {
		defer span.End()
		defer resp.Body.Close()
		defer close(ch)

		buf := make([]byte, cfg.chunkSize)
		for {
			n, readErr := resp.Body.Read(buf)
			if n > 0 {
				chunk := string(buf[:n])
				obslog.Logger().Debug().Int("bytes", n).Msg("httpfeed chunk received")
				select {
				case ch <- chunk:
				case <-ctx.Done():
					span.RecordError(ctx.Err())
					return
				}
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					obslog.Logger().Warn().Err(readErr).Msg("httpfeed read error")
					span.RecordError(readErr)
					span.SetStatus(codes.Error, readErr.Error())
				}
				return
			}
		}
	}()

	return lazy.FromChannel(ch), nil
}
