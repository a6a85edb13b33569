package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// CompressionConfig controls response compression. The API surface is
// almost entirely JSON (asset listings, session snapshots) plus the
// Prometheus text exposition, so the type list is short.
type CompressionConfig struct {
	// MinSize is the smallest body, in bytes, worth compressing.
	MinSize int
	// Level is the gzip compression level.
	Level int
	// Types is the set of compressible media types.
	Types []string
}

// DefaultCompressionConfig returns the default compression configuration.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   gzip.DefaultCompression,
		Types: []string{
			"application/json",
			"text/plain",
			"text/html",
		},
	}
}

var gzipPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return w
	},
}

// gzipResponseWriter defers the compress-or-not decision until MinSize
// bytes have been buffered or the response ends, whichever comes first.
// Small selection acks stay uncompressed; large catalog listings do not.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw       *gzip.Writer
	config   CompressionConfig
	buf      []byte
	status   int
	decided  bool
	compress bool
}

func newGzipResponseWriter(w http.ResponseWriter, config CompressionConfig) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
		config:         config,
		status:         http.StatusOK,
		buf:            make([]byte, 0, config.MinSize+1),
	}
}

// WriteHeader records the status; it is emitted once the compression
// decision is made.
func (g *gzipResponseWriter) WriteHeader(statusCode int) {
	if !g.decided {
		g.status = statusCode
	}
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	if g.decided {
		if g.compress {
			return g.zw.Write(data)
		}
		return g.ResponseWriter.Write(data)
	}

	g.buf = append(g.buf, data...)
	if len(g.buf) > g.config.MinSize {
		g.decide()
	}
	return len(data), nil
}

func (g *gzipResponseWriter) compressibleType() bool {
	contentType := g.Header().Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	for _, t := range g.config.Types {
		if mediaType == t {
			return true
		}
	}
	return false
}

// decide commits to compressed or plain output and flushes the buffer.
func (g *gzipResponseWriter) decide() {
	if g.decided {
		return
	}
	g.decided = true
	g.compress = len(g.buf) >= g.config.MinSize && g.compressibleType()

	if g.compress {
		g.Header().Del("Content-Length")
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Add("Vary", "Accept-Encoding")

		g.zw = gzipPool.Get().(*gzip.Writer)
		g.zw.Reset(g.ResponseWriter)
		g.ResponseWriter.WriteHeader(g.status)
		g.zw.Write(g.buf)
	} else {
		g.ResponseWriter.WriteHeader(g.status)
		g.ResponseWriter.Write(g.buf)
	}
	g.buf = nil
}

// Close finishes the response and returns the gzip writer to the pool.
func (g *gzipResponseWriter) Close() error {
	if !g.decided {
		g.decide()
	}
	if g.zw != nil {
		err := g.zw.Close()
		gzipPool.Put(g.zw)
		g.zw = nil
		return err
	}
	return nil
}

// Flush implements http.Flusher.
func (g *gzipResponseWriter) Flush() {
	if !g.decided {
		g.decide()
	}
	if g.zw != nil {
		g.zw.Flush()
	}
	if flusher, ok := g.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Compression returns a middleware that gzips qualifying responses.
func Compression(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzw := newGzipResponseWriter(w, config)
			defer gzw.Close()

			next.ServeHTTP(gzw, r)
		})
	}
}
