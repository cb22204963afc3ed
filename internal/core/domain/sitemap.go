package domain

import "time"

// Sitemap change frequencies.
const (
	ChangeDaily  = "daily"
	ChangeWeekly = "weekly"
)

// SitemapEntry is one URL in the site map.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}
