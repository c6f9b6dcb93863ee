package cache

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is a read handler that yields a status code and a JSON-serializable
// body instead of writing to the response itself. Wrap captures the body for
// the cache before sending it, so no response-writer interception is needed.
type Handler func(c *gin.Context) (int, interface{})

// Key normalizes a request URL into a cache key: path plus the query string
// with parameters sorted for determinism, so parameter order does not split
// the cache.
func Key(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		vals := append([]string(nil), query[k]...)
		sort.Strings(vals)
		for j, v := range vals {
			if j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	return b.String()
}

// RequestKey builds the cache key for an incoming request.
func RequestKey(c *gin.Context) string {
	return Key(c.Request.URL.Path, c.Request.URL.Query())
}

// Wrap decorates a read handler with response caching. Only GET requests are
// cached: a hit short-circuits without invoking the handler, a miss runs the
// handler and stores 200-status bodies under the normalized URL key. The
// cached payload is replayed verbatim on later hits with no marker header.
// A nil store degrades to plain pass-through, keeping caching an optimization
// rather than a correctness dependency.
func Wrap(store *Store, h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			status, body := h(c)
			c.JSON(status, body)
			return
		}

		key := RequestKey(c)
		if cached, ok := store.Get(key); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		status, body := h(c)
		if status == http.StatusOK {
			store.Set(key, body)
			store.logger.Debug("response cached", zap.String("key", key))
		}
		c.JSON(status, body)
	}
}
