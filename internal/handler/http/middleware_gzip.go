package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Compressor and decompressor instances are pooled across requests; every
// JSON body on the wire is small, so allocation cost dominates otherwise.
var (
	responseCompressors = sync.Pool{
		New: func() any {
			return gzip.NewWriter(nil)
		},
	}

	requestDecompressors = sync.Pool{
		New: func() any {
			return new(gzip.Reader)
		},
	}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that advertise gzip in Accept-Encoding. A request body that
// declares gzip but is not valid gzip data answers 400.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			decompressor := requestDecompressors.Get().(*gzip.Reader)
			if err := decompressor.Reset(r.Body); err != nil {
				requestDecompressors.Put(decompressor)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledBodyReader{
				Reader:       decompressor,
				decompressor: decompressor,
			}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		compressor := responseCompressors.Get().(*gzip.Writer)
		compressor.Reset(w)

		next.ServeHTTP(&compressedResponseWriter{
			ResponseWriter: w,
			compressor:     compressor,
		}, r)

		compressor.Close()
		responseCompressors.Put(compressor)
	})
}

// pooledBodyReader returns its decompressor to the pool when the request
// body is closed.
type pooledBodyReader struct {
	io.Reader
	decompressor *gzip.Reader
	closed       bool
}

func (b *pooledBodyReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.decompressor.Close()
	requestDecompressors.Put(b.decompressor)
	return err
}

// compressedResponseWriter routes body writes through the gzip compressor
// and stamps the Content-Encoding header before the status line goes out.
type compressedResponseWriter struct {
	http.ResponseWriter
	compressor *gzip.Writer
}

func (w *compressedResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedResponseWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}
