package http

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"zen-tracker-go/internal/stats"
	"zen-tracker-go/internal/store"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]{3,32}$`)

func validUsername(name string) bool {
	return usernameRe.MatchString(name)
}

func validPassword(pw string) bool {
	return len(pw) >= 6 && len(pw) <= 128
}

// parseDate accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// listRange reads the startDate/endDate/limit query parameters shared by
// the list endpoints.
func listRange(c *gin.Context) store.Range {
	var r store.Range
	if v := c.Query("startDate"); v != "" {
		if t, err := parseDate(v); err == nil {
			r.Start = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := parseDate(v); err == nil {
			r.End = &t
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			r.Limit = n
		}
	}
	return r
}

// window converts a ?days=N parameter into a trailing-window Range starting
// at local midnight N days ago.
func window(c *gin.Context, defaultDays int) store.Range {
	days := defaultDays
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	since := stats.DayStart(time.Now().AddDate(0, 0, -days))
	return store.Since(since)
}

// validateBody checks the raw request body against a schema and decodes it
// into dest. It returns the first schema violation, if any.
func validateBody(c *gin.Context, schema *gojsonschema.Schema, dest any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if !res.Valid() {
		return fmt.Errorf("%s", res.Errors()[0].String())
	}
	return json.Unmarshal(body, dest)
}
