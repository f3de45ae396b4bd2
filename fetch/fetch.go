// Package fetch loads HTML documents over HTTP.
package fetch

import (
	"compress/gzip"
	"compress/zlib"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/shiroyk/domkit/lib"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const (
	// DefaultMaxBodySize the default max body size
	DefaultMaxBodySize int64 = 64 * 1024 * 1024
	// DefaultRetryTimes the default retry times
	DefaultRetryTimes = 3
	// DefaultTimeout the default request timeout
	DefaultTimeout = time.Minute
)

var (
	// DefaultRetryHTTPCodes the status codes a request is retried on
	DefaultRetryHTTPCodes = []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable,
		http.StatusGatewayTimeout, http.StatusRequestTimeout}
	// DefaultHeaders the default request headers
	DefaultHeaders = map[string]string{
		"Accept":          "text/html,application/xhtml+xml,*/*;q=0.8",
		"Accept-Encoding": "gzip, deflate, br",
		"Accept-Language": "en-US,en;",
		"User-Agent":      fmt.Sprintf("domkit/%v", lib.Version),
	}
)

// ErrUnknownEncoding the forced charset is not a known encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// StatusError the response has a non 2xx status code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Options The Fetcher options
type Options struct {
	// Encoding forces the body charset, it is detected from the response when empty.
	Encoding       string        `yaml:"encoding,omitempty"`
	MaxBodySize    int64         `yaml:"max-body-size"`
	RetryTimes     int           `yaml:"retry-times"`
	RetryHTTPCodes []int         `yaml:"retry-http-codes,omitempty"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Fetcher http client decoding compressed and non UTF-8 bodies.
type Fetcher struct {
	client         *http.Client
	encoding       string
	maxBodySize    int64
	retryTimes     int
	retryHTTPCodes []int
}

func zeroOr[T comparable](value, def T) T {
	var zero T
	if value == zero {
		return def
	}
	return value
}

// New returns a new Fetcher
func New(opt Options) *Fetcher {
	f := &Fetcher{
		encoding:       opt.Encoding,
		maxBodySize:    zeroOr(opt.MaxBodySize, DefaultMaxBodySize),
		retryTimes:     zeroOr(opt.RetryTimes, DefaultRetryTimes),
		retryHTTPCodes: opt.RetryHTTPCodes,
	}
	if len(f.retryHTTPCodes) == 0 {
		f.retryHTTPCodes = DefaultRetryHTTPCodes
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		// the body is decompressed by the fetcher
		DisableCompression: true,
	}
	f.client = &http.Client{
		Transport: transport,
		Timeout:   zeroOr(opt.Timeout, DefaultTimeout),
	}
	return f
}

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Get issues a GET to the URL and returns the body decoded to UTF-8.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	for i := 0; i <= f.retryTimes; i++ {
		if i > 0 {
			slog.Debug("retry request", "url", url, "times", i, "error", err)
		}
		body, err = f.get(ctx, url)
		if err == nil || !f.retryable(err) {
			return body, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
	}
	return body, err
}

func (f *Fetcher) retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return slices.Contains(f.retryHTTPCodes, statusErr.Code)
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, ErrUnknownEncoding) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	var decoder transform.Transformer
	if f.encoding != "" {
		enc, _ := charset.Lookup(f.encoding)
		if enc == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, f.encoding)
		}
		decoder = enc.NewDecoder()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range DefaultHeaders {
		req.Header.Set(k, v)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: res.StatusCode}
	}

	// Reading past the limit fails with *http.MaxBytesError
	var bodyReader io.Reader = http.MaxBytesReader(nil, res.Body, f.maxBodySize)

	if encoding := res.Header.Get("Content-Encoding"); encoding != "" {
		bodyReader, err = decompressedBody(encoding, bodyReader)
		if err != nil {
			return nil, err
		}
	}

	if decoder != nil {
		bodyReader = transform.NewReader(bodyReader, decoder)
	} else {
		contentType := res.Header.Get("Content-Type")
		bodyReader, err = charset.NewReader(bodyReader, contentType)
		if err != nil {
			return nil, fmt.Errorf("charset detection error on content-type %s: %w", contentType, err)
		}
	}

	return io.ReadAll(bodyReader)
}

func decompressedBody(encoding string, reader io.Reader) (io.Reader, error) {
	var err error
	// In the order applied, decompress from the last one
	encodings := strings.Split(encoding, ",")
	for i := len(encodings) - 1; i >= 0; i-- {
		switch encode := strings.TrimSpace(encodings[i]); encode {
		case "", "identity":
		case "deflate":
			reader, err = zlib.NewReader(reader)
		case "gzip":
			reader, err = gzip.NewReader(reader)
		case "br":
			reader = brotli.NewReader(reader)
		default:
			err = fmt.Errorf("unsupported compression type %s", encode)
		}
		if err != nil {
			return nil, err
		}
	}
	return reader, nil
}
