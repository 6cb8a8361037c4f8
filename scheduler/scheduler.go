// Package scheduler owns one cron job per feed: it fires ticks,
// de-duplicates entries across ticks, and fans new entries out to the
// publishing profiles bound to each feed.
package scheduler

import (
	"context"
	"sort"
	"sync"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/nbd-wtf/go-nostr"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

var (
	// ErrFeedNotFound is returned when a feed id is not scheduled.
	ErrFeedNotFound = errors.New("feed not found")
	// ErrDuplicateFeed is returned when adding a feed whose id is taken.
	ErrDuplicateFeed = errors.New("feed already exists")
	// ErrInvalidSchedule is returned when a cron expression does not parse.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// cronParser accepts the 6-field seconds-precision expressions the
// feeds config uses.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Fetcher retrieves and parses a feed URL into entries, in freshness
// order defined by the remote source.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]rss.Entry, error)
}

// Publisher signs and broadcasts a note through a profile's relays.
type Publisher interface {
	PublishNote(ctx context.Context, prof profile.Profile, relays []profile.Relay, content string, tags nostr.Tags, difficulty int) error
}

// job pairs a scheduled feed with its timer handle and dedup cache.
// tickMu enforces non-overlap: a firing that finds it held is dropped,
// and DeleteFeed blocks on it until an in-flight tick yields.
type job struct {
	feed   rss.Feed
	entry  cron.EntryID
	cache  *DedupCache
	tickMu sync.Mutex
}

// Scheduler owns the set of feed jobs. Jobs resolve their own state
// through the scheduler by feed id on every tick, so deletion never
// races a closure-captured handle.
type Scheduler struct {
	cron      *cron.Cron
	fetcher   Fetcher
	publisher Publisher
	profiles  *profile.Registry

	mu   sync.RWMutex
	jobs map[string]*job
}

func New(fetcher Fetcher, publisher Publisher, profiles *profile.Registry) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithParser(cronParser)),
		fetcher:   fetcher,
		publisher: publisher,
		profiles:  profiles,
		jobs:      map[string]*job{},
	}
}

// Start begins firing timers for all registered feeds.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the timers. In-flight ticks run to completion.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// AddFeed registers a feed, takes the initial snapshot, and installs
// its timer, all under the registry guard. A snapshot failure leaves
// the cache empty: the next successful fetch then treats every current
// entry as new. That burst is a known, accepted trade-off.
func (s *Scheduler) AddFeed(ctx context.Context, feed rss.Feed) error {
	if err := feed.Validate(); err != nil {
		return err
	}

	schedule, err := cronParser.Parse(feed.Schedule)
	if err != nil {
		return errors.Wrapf(ErrInvalidSchedule, "%q: %s", feed.Schedule, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[feed.ID]; ok {
		return ErrDuplicateFeed
	}

	cache := NewDedupCache(feed.ResolvedCacheSize(ctx))
	cache.Seed(s.snapshot(ctx, feed))

	j := &job{feed: feed, cache: cache}

	id := feed.ID
	j.entry = s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.runTick(id)
	}))

	s.jobs[id] = j
	return nil
}

// DeleteFeed stops the feed's timer and removes its job and cache. It
// does not return until an in-flight tick for the feed has yielded.
func (s *Scheduler) DeleteFeed(id string) error {
	s.mu.Lock()
	j, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return ErrFeedNotFound
	}

	s.cron.Remove(j.entry)
	delete(s.jobs, id)
	s.mu.Unlock()

	// A tick already mid-publish runs to completion; wait it out so the
	// delete is observable only after the tick yields.
	j.tickMu.Lock()
	j.tickMu.Unlock()

	return nil
}

// GetFeed returns the feed registered under id.
func (s *Scheduler) GetFeed(id string) (rss.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return rss.Feed{}, ErrFeedNotFound
	}
	return j.feed, nil
}

// ListFeeds returns a consistent snapshot of all scheduled feeds,
// ordered by id.
func (s *Scheduler) ListFeeds() []rss.Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feeds := make([]rss.Feed, 0, len(s.jobs))
	for _, j := range s.jobs {
		feeds = append(feeds, j.feed)
	}
	sort.Slice(feeds, func(i, j int) bool { return feeds[i].ID < feeds[j].ID })
	return feeds
}

// Len returns the number of scheduled feeds.
func (s *Scheduler) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// CacheSnapshot exposes the retained entry ids for a feed. Diagnostic
// surface used by tests and the control plane's state probe.
func (s *Scheduler) CacheSnapshot(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, ErrFeedNotFound
	}
	return j.cache.Snapshot(), nil
}

// snapshot fetches the feed once and returns the ids of every present
// entry, so boot does not flood relays with pre-existing content.
func (s *Scheduler) snapshot(ctx context.Context, feed rss.Feed) []string {
	entries, err := s.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		logger.For(ctx).Errorf("error while fetching feed %s, skipping initial snapshot: %s", feed.ID, err)
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}
