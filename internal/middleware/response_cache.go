package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"newsportal/internal/cache"
	handlers "newsportal/internal/handler"
)

// cachedResponse is the replayable part of a GET response.
type cachedResponse struct {
	StatusCode int               `json:"status_code"`
	Header     map[string]string `json:"header"`
	Body       []byte            `json:"body"`
}

// replayedHeaders limits what a cache hit carries back to the client.
var replayedHeaders = []string{"Content-Type", "X-Total-Count"}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *responseRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

func (rec *responseRecorder) Write(data []byte) (int, error) {
	rec.body.Write(data)
	return rec.ResponseWriter.Write(data)
}

// ResponseCache serves GET responses cache-aside: a hit short-circuits
// the handler, a miss stores the produced envelope under a key built
// from method, URI and requester identity. Strictly best-effort — every
// cache failure falls through to the handler.
func ResponseCache(store cache.Cache, ttl time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			identity := "public"
			if principal, ok := handlers.PrincipalFromContext(r.Context()); ok {
				identity = principal.ID
			}
			key := cache.HTTPKey(r.Method, r.URL.RequestURI(), identity)

			if data, ok, err := store.Get(r.Context(), key); err == nil && ok {
				var cached cachedResponse
				if err := json.Unmarshal(data, &cached); err == nil {
					log.Printf("Cache HIT: %s", key)
					for name, value := range cached.Header {
						w.Header().Set(name, value)
					}
					w.WriteHeader(cached.StatusCode)
					w.Write(cached.Body)
					return
				}
			}

			log.Printf("Cache MISS: %s", key)

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.statusCode != http.StatusOK {
				return
			}

			cached := cachedResponse{
				StatusCode: rec.statusCode,
				Header:     map[string]string{},
				Body:       rec.body.Bytes(),
			}
			for _, name := range replayedHeaders {
				if value := rec.Header().Get(name); value != "" {
					cached.Header[name] = value
				}
			}

			data, err := json.Marshal(cached)
			if err != nil {
				return
			}
			if err := store.Set(r.Context(), key, data, ttl); err != nil {
				log.Printf("Не удалось сохранить ответ в кэш %s: %v", key, err)
			}
		})
	}
}
