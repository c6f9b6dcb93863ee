package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
)

// requestLanguage resolves the localization language for a request. A lang
// query parameter wins (it is part of the cache key, so localized cached
// responses stay per-language); otherwise the primary Accept-Language tag is
// used, reduced to its base subtag.
func requestLanguage(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return strings.ToLower(lang)
	}
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return models.DefaultLanguage
	}
	primary := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	primary = strings.SplitN(primary, ";", 2)[0]
	primary = strings.SplitN(primary, "-", 2)[0]
	if primary == "" || primary == "*" {
		return models.DefaultLanguage
	}
	return strings.ToLower(primary)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// uuidQuery parses an optional UUID query parameter. An absent parameter
// yields (nil, nil); a malformed one yields an error.
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// timeQuery parses an optional date query parameter, accepting RFC 3339 or
// a bare calendar date.
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
