package domain

const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 100

	// MaxPageSize is the largest page the issue tracker will return.
	MaxPageSize = 100
)

// PageRequest selects one page of posts in one locale.
type PageRequest struct {
	Locale   Locale
	Page     int
	PageSize int
}

// Normalize fills defaults and clamps out-of-range values.
// Page numbering starts at 1.
func (r PageRequest) Normalize() PageRequest {
	if r.Locale == "" {
		r.Locale = DefaultLocale
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	return r
}
