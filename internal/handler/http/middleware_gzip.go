// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}

// withGZip accepts gzip request bodies and gzips responses for clients that
// ask for it.
func withGZip(next http.Handler) http.Handler {
	return decodeGzipBody(compressResponse(next))
}

func decodeGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !hasToken(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		r.Body = &gzipBody{Reader: zr, src: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}

func compressResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasToken(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		defer gzipWriters.Put(zw)

		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(gw, r)
		gw.finish()
	})
}

// hasToken reports whether the comma separated header value lists token,
// ignoring q-values.
func hasToken(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(name, token) {
			return true
		}
	}
	return false
}

// gzipBody closes both the decompressor and the original body.
type gzipBody struct {
	*gzip.Reader
	src interface{ Close() error }
}

func (b *gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.src.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	status     int
	compressed bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status != 0 {
		return
	}
	w.status = status

	// 204 and 304 carry no body to compress.
	if status != http.StatusNoContent && status != http.StatusNotModified {
		w.compressed = true
		w.zw.Reset(w.ResponseWriter)
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	if w.compressed {
		return w.zw.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

func (w *gzipResponseWriter) finish() {
	if w.compressed {
		_ = w.zw.Close()
	}
}
