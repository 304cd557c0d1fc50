package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the default TTL for stored responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// IdempotencyStore keeps serialized responses by key.
// Implementations treat every backend failure as a miss.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// cachedResponse is the stored form of a response.
type cachedResponse struct {
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	StoredAt    time.Time `json:"stored_at"`
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   IdempotencyStore
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns a config backed by an in-memory store.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   NewMemoryIdempotencyStore(),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency returns a middleware that honours the Idempotency-Key header on
// POST, PUT and PATCH. A repeated request with the same key, method, path and
// body gets the first 2xx response back without running the handler again,
// so a retried brew deducts stock only once. A second request arriving while
// the first is still running gets 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = IdempotencyKeyTTL
	}

	var inFlight sync.Map

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := generateCacheKey(key, c.Request)
		ctx := c.Request.Context()

		if replay(c, cfg.Store, cacheKey) {
			return
		}

		if _, busy := inFlight.LoadOrStore(cacheKey, struct{}{}); busy {
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, "A request with this idempotency key is already in progress").
					WithRequestID(GetRequestID(c)))
			return
		}
		defer inFlight.Delete(cacheKey)

		// The first request may have finished between the lookup and the claim.
		if replay(c, cfg.Store, cacheKey) {
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.handlerStatus()
		if status < 200 || status >= 300 {
			return
		}

		data, err := json.Marshal(cachedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
			StoredAt:    time.Now().UTC(),
		})
		if err != nil {
			log := logger.WithRequestID(GetRequestID(c))
			log.Warn().Err(err).Msg("Failed to encode idempotent response")
			return
		}
		// A request that timed out still stores what its handler produced, so
		// the client's retry is answered without brewing again.
		cfg.Store.Set(context.WithoutCancel(ctx), cacheKey, data, cfg.TTL)
	}
}

// replay writes the stored response for cacheKey, if any, and aborts the chain.
func replay(c *gin.Context, store IdempotencyStore, cacheKey string) bool {
	data, ok := store.Get(c.Request.Context(), cacheKey)
	if !ok {
		return false
	}

	var resp cachedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log := logger.WithRequestID(GetRequestID(c))
		log.Warn().Err(err).Msg("Discarding unreadable idempotent response")
		return false
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(resp.StatusCode, contentType, resp.Body)
	c.Abort()
	return true
}

// generateCacheKey hashes the idempotency key together with the request's
// method, path and body. The body is restored for the handler.
func generateCacheKey(idempotencyKey string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))
	hasher.Write([]byte{0})

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter tees the handler's status and body for storage. It records
// them before passing them on, so they survive a Timeout writer that drops
// late output.
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	if code > 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) WriteHeaderNow() {
	w.defaultStatus()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.defaultStatus()
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.defaultStatus()
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (w *responseWriter) defaultStatus() {
	if w.status == 0 {
		w.status = http.StatusOK
	}
}

// handlerStatus is the status the handler chose, falling back to the
// underlying writer's status if the handler set none.
func (w *responseWriter) handlerStatus() int {
	if w.status != 0 {
		return w.status
	}
	return w.ResponseWriter.Status()
}
