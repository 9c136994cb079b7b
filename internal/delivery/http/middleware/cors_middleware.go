package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "Accept"}
)

// corsMaxAge is how long browsers may cache a preflight answer
const corsMaxAge = 10 * time.Minute

type CORSMiddleware struct {
	allowedOrigin string
}

// NewCORSMiddleware answers every origin when allowedOrigin is empty or "*"
func NewCORSMiddleware(allowedOrigin string) *CORSMiddleware {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &CORSMiddleware{allowedOrigin: allowedOrigin}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", m.allowedOrigin)
		if m.allowedOrigin != "*" {
			h.Add("Vary", "Origin")
		}

		if req.Method == http.MethodOptions {
			m.Preflight(w, req)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// Preflight answers an OPTIONS request. It is also registered as the
// catch-all OPTIONS route so that mux runs the middleware chain for it.
func (m *CORSMiddleware) Preflight(w http.ResponseWriter, req *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
	h.Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))
	h.Set("Access-Control-Max-Age", strconv.Itoa(int(corsMaxAge.Seconds())))
	w.WriteHeader(http.StatusNoContent)
}
