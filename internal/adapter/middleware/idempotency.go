package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// How long the "in-progress" lock is held before the handler must have
// finished and stored the final response.
const provisionalLockTTL = 60 * time.Second

// HeaderIdempotencyKey is opt-in: clients that retry mutating requests
// send it so a retry after a lost response cannot double-apply a payment.
const HeaderIdempotencyKey = "X-Idempotency-Key"

type idempEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	Key        string    `json:"key"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency dedupes mutating requests by method + route + key.
// First request stores its response, replays return it verbatim, a
// concurrent duplicate gets 409, and reusing a key with a different
// body gets 409.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Only mutating methods participate
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			key := strings.TrimSpace(req.Header.Get(HeaderIdempotencyKey))
			if key == "" {
				return next(c)
			}
			if !validKey(key) {
				return c.JSON(http.StatusBadRequest, map[string]any{
					"success": false, "message": "Invalid " + HeaderIdempotencyKey + " format",
				})
			}

			// Buffer & hash body so a reused key with a new payload is caught
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			storeKey := buildKey(req.Method, c.Path(), key)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			entry := idempEntry{
				InProgress: true,
				BodySHA256: bhash,
				Key:        key,
				CreatedAt:  time.Now().UTC(),
			}
			ok, err := provisionalSet(ctx, rdb, storeKey, entry)
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]any{
					"success": false, "message": "Idempotency store unavailable",
				})
			}
			if !ok {
				cur, errLoad := loadEntry(ctx, rdb, storeKey)
				if errLoad != nil {
					log.Printf("idempotency: load %s: %v", storeKey, errLoad)
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]any{
						"success": false, "message": HeaderIdempotencyKey + " reused with different body",
					})
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]any{
					"success": false, "message": "Request is already in progress",
				})
			}

			// Record the final response for replays
			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			final := idempEntry{
				InProgress: false,
				Code:       rec.code,
				Body:       rec.buf.Bytes(),
				BodySHA256: bhash,
				Key:        key,
				CreatedAt:  time.Now().UTC(),
			}
			_ = saveFinal(context.Background(), rdb, storeKey, final, ttl)
			return nil
		}
	}
}
