// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package httpfeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazyseq/lazy"
	"github.com/lazyseq/lazy/internal/httpfeed"
)

func TestNewStreamsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alpha\nbeta\ngamma"))
	}))
	defer srv.Close()

	feed, err := httpfeed.New(context.Background(), srv.URL, httpfeed.WithChunkSize(4))
	require.NoError(t, err)

	chunks := lazy.ToArray[string](feed)
	require.Equal(t, "alpha\nbeta\ngamma", strings.Join(chunks, ""))
}

func TestNewPropagatesRequestErrors(t *testing.T) {
	_, err := httpfeed.New(context.Background(), "http://127.0.0.1:0/unreachable")
	require.Error(t, err)
}
