package types

import (
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any list request can ask for.
	MaxLimit = 100
)

// ListOptions holds the pagination and filter inputs accepted by the list
// endpoints. The zero value requests the server defaults.
type ListOptions struct {
	Page     int
	Limit    int
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Query renders the options as URL query parameters, omitting zero values.
func (o ListOptions) Query() url.Values {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(NormalizeLimit(o.Limit)))
	}
	if o.Status != "" {
		values.Set("status", o.Status)
	}
	if !o.DateFrom.IsZero() {
		values.Set("date_from", o.DateFrom.UTC().Format(time.RFC3339))
	}
	if !o.DateTo.IsZero() {
		values.Set("date_to", o.DateTo.UTC().Format(time.RFC3339))
	}
	return values
}
