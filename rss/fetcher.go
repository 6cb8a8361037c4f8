package rss

import (
	"context"
	"time"

	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

// Parser abstracts the gofeed parser so fetching can be mocked in tests.
type Parser interface {
	ParseURLWithContext(url string, ctx context.Context) (*gofeed.Feed, error)
}

// Fetcher retrieves a feed URL and maps its items to Entries in the
// order the remote source returns them. The fetcher defines freshness
// order; callers must not re-sort.
type Fetcher struct {
	parser Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

func NewFetcherWithParser(parser Parser) *Fetcher {
	return &Fetcher{parser: parser}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	logger.For(ctx).Debugf("requesting %s", url)

	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch feed %s", url)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, entryFromItem(item))
	}

	return entries, nil
}

func entryFromItem(item *gofeed.Item) Entry {
	entry := Entry{
		ID:      item.GUID,
		Title:   item.Title,
		URL:     item.Link,
		Summary: item.Description,
		Content: item.Content,
	}

	if entry.ID == "" {
		entry.ID = item.Link
	}

	if entry.URL == "" && len(item.Links) > 0 {
		entry.URL = item.Links[0]
	}

	if item.PublishedParsed != nil {
		entry.Published = *item.PublishedParsed
	}

	for _, person := range item.Authors {
		if person != nil && person.Name != "" {
			entry.Authors = append(entry.Authors, person.Name)
		}
	}

	return entry
}
