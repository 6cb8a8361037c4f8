package rss

import (
	"context"
	"net/url"
	"time"

	"github.com/mikeydub/go-nostrss/env"
	"github.com/pkg/errors"
)

// DefaultCacheSize bounds a feed's dedup cache when neither the feed
// nor the DEFAULT_CACHE_SIZE env var declares one.
const DefaultCacheSize = 1000

// DefaultProfileID is the reserved profile every feed falls back to.
const DefaultProfileID = "default"

// Feed is a configured syndication source with its schedule and
// publishing parameters, as declared in the feeds config file.
type Feed struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	URL       string   `json:"url" yaml:"url"`
	Schedule  string   `json:"schedule" yaml:"schedule"`
	Profiles  []string `json:"profiles,omitempty" yaml:"profiles,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Template  *string  `json:"template,omitempty" yaml:"template,omitempty"`
	CacheSize *int     `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
	PowLevel  int      `json:"pow_level,omitempty" yaml:"pow_level,omitempty"`
}

// Validate checks the fields that must hold before a feed is admitted
// to the scheduler. Schedule validity is the scheduler's concern.
func (f Feed) Validate() error {
	if f.ID == "" {
		return errors.New("feed id is required")
	}
	if _, err := url.ParseRequestURI(f.URL); err != nil {
		return errors.Wrapf(err, "invalid url for feed %s", f.ID)
	}
	if f.PowLevel < 0 || f.PowLevel > 255 {
		return errors.Errorf("pow_level out of range for feed %s: %d", f.ID, f.PowLevel)
	}
	return nil
}

// ProfileIDs returns the profiles the feed publishes through,
// substituting the default profile when none are bound.
func (f Feed) ProfileIDs() []string {
	if len(f.Profiles) == 0 {
		return []string{DefaultProfileID}
	}
	return f.Profiles
}

// ResolvedCacheSize returns the dedup cache bound for the feed,
// falling back to DEFAULT_CACHE_SIZE and then the hard-coded default.
func (f Feed) ResolvedCacheSize(ctx context.Context) int {
	if f.CacheSize != nil {
		return *f.CacheSize
	}
	if size, ok := env.GetIfExists[string](ctx, "DEFAULT_CACHE_SIZE"); ok && size != "" {
		return env.GetInt(ctx, "DEFAULT_CACHE_SIZE")
	}
	return DefaultCacheSize
}

// Entry is a single item parsed from a fetched feed.
type Entry struct {
	ID        string
	Title     string
	URL       string
	Summary   string
	Content   string
	Published time.Time
	Authors   []string
}
