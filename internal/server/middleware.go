package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// loggingMiddleware assigns a request id, echoes it in X-Request-ID and logs
// the start and completion of every request outside quietPaths.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			LogFieldMethod, r.Method,
			LogFieldPath, r.URL.Path,
			LogFieldRemoteAddr, r.RemoteAddr,
			LogFieldContentLength, r.ContentLength,
			LogFieldUserAgent, r.UserAgent())
		log.Debug(LogMsgRequestHeaders, LogFieldHeaders, redactHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			LogFieldMethod, r.Method,
			LogFieldPath, r.URL.Path,
			LogFieldStatus, status,
			LogFieldDurationMS, time.Since(start).Milliseconds())
	})
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// recoverMiddleware turns a handler panic into a logged 500.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error(LogMsgHandlerPanic,
				LogFieldMethod, r.Method,
				LogFieldPath, r.URL.Path,
				LogFieldPanic, rec)
			http.Error(w, ErrMsgInternalError, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
