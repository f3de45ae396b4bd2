package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><p>héllo</p></body></html>`

func TestGet(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gzip":
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			gw := gzip.NewWriter(w)
			_, _ = gw.Write([]byte(page))
			_ = gw.Close()
		case "/br":
			w.Header().Set("Content-Encoding", "br")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			bw := brotli.NewWriter(w)
			_, _ = bw.Write([]byte(page))
			_ = bw.Close()
		case "/latin1":
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>h\xe9llo</p>"))
		case "/retry":
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(page))
		case "/unknown":
			w.Header().Set("Content-Encoding", "zstd")
			_, _ = w.Write([]byte(page))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	f := New(Options{})
	ctx := context.Background()

	for _, path := range []string{"/gzip", "/br"} {
		body, err := f.Get(ctx, ts.URL+path)
		require.NoError(t, err, path)
		assert.Equal(t, page, string(body), path)
	}

	body, err := f.Get(ctx, ts.URL+"/latin1")
	require.NoError(t, err)
	assert.Equal(t, "<p>héllo</p>", string(body))

	body, err = f.Get(ctx, ts.URL+"/retry")
	require.NoError(t, err)
	assert.True(t, bytes.Contains(body, []byte("héllo")))
	assert.Equal(t, int32(3), calls.Load())

	_, err = f.Get(ctx, ts.URL+"/missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)

	_, err = f.Get(ctx, ts.URL+"/unknown")
	assert.ErrorContains(t, err, "unsupported compression type zstd")
}

func TestEncoding(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>h\xe9llo</p>"))
	}))
	defer ts.Close()

	body, err := New(Options{Encoding: "latin1"}).Get(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "<p>héllo</p>", string(body))

	_, err = New(Options{Encoding: "no-such-charset"}).Get(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestMaxBodySize(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()
	ctx := context.Background()

	body, err := New(Options{MaxBodySize: int64(len(page))}).Get(ctx, ts.URL)
	require.NoError(t, err)
	assert.Equal(t, page, string(body))

	calls.Store(0)
	_, err = New(Options{MaxBodySize: 16}).Get(ctx, ts.URL)
	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, int64(16), tooLarge.Limit)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIsURL(t *testing.T) {
	t.Parallel()
	assert.True(t, IsURL("https://go.dev"))
	assert.True(t, IsURL("http://localhost:8080/a"))
	assert.False(t, IsURL("./page.html"))
	assert.False(t, IsURL("ftp://host"))
}
