// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that send "Accept-Encoding: gzip". Bodiless responses (204, 304)
// are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			gz := gzipReaderPool.Get().(*gzip.Reader)
			if err := gz.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gz)
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &gzipReadCloser{Reader: gz, orig: r.Body}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)

		gw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
		next.ServeHTTP(gw, r)

		if gw.compressing() {
			gz.Close()
		}
		gz.Reset(io.Discard)
		gzipWriterPool.Put(gz)
	})
}

type gzipReadCloser struct {
	*gzip.Reader
	orig   io.ReadCloser
	closed bool
}

func (g *gzipReadCloser) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	g.Reader.Close()
	gzipReaderPool.Put(g.Reader)
	return g.orig.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer

	wroteHeader bool
	passthrough bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified {
		w.passthrough = true
	} else {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.Header().Add("Vary", "Accept-Encoding")
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(data)
	}
	return w.gz.Write(data)
}

func (w *gzipResponseWriter) compressing() bool {
	return w.wroteHeader && !w.passthrough
}
