package scheduler

import (
	"context"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/mikeydub/go-nostrss/template"
	"github.com/nbd-wtf/go-nostr"
	"github.com/sirupsen/logrus"
)

// runTick is the cron entrypoint for one feed. The job resolves its
// own state by id so a concurrent DeleteFeed is observed as a missing
// job rather than a stale closure.
func (s *Scheduler) runTick(id string) {
	ctx := logger.NewContextWithFields(context.Background(), logrus.Fields{"feed": id})

	s.mu.RLock()
	j, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return
	}

	s.fire(ctx, id, j)
}

// fire runs one tick for a job loaded from the registry. Holding
// tickMu alone is not enough: DeleteFeed may have removed the job
// between the lookup and the lock, so the id must still resolve to the
// same job before any fetch or publish happens.
func (s *Scheduler) fire(ctx context.Context, id string, j *job) {
	if !j.tickMu.TryLock() {
		logger.For(ctx).Warnf("previous tick for feed %s still running, dropping this firing", id)
		return
	}
	defer j.tickMu.Unlock()

	s.mu.RLock()
	current, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok || current != j {
		return
	}

	s.tick(ctx, j)
}

// tick fetches the feed, publishes entries not yet seen, and admits
// them to the cache. Entries are processed in fetcher order.
func (s *Scheduler) tick(ctx context.Context, j *job) {
	entries, err := s.fetcher.Fetch(ctx, j.feed.URL)
	if err != nil {
		logger.For(ctx).Errorf("error while fetching feed %s, skipping tick: %s", j.feed.ID, err)
		return
	}

	for _, entry := range entries {
		if j.cache.Contains(entry.ID) {
			logger.For(ctx).Debugf("entry %s already published for feed %s, skipping", entry.ID, j.feed.ID)
			continue
		}

		content, err := template.Render(ctx, j.feed, entry)
		if err != nil {
			// Template errors are systemic, not per-entry: abort the
			// tick without admitting the entry so nothing is lost.
			logger.For(ctx).Errorf("error rendering entry %s for feed %s, aborting tick: %s", entry.ID, j.feed.ID, err)
			return
		}

		s.fanOut(ctx, j.feed, content)
		j.cache.Admit(entry.ID)
	}
}

// fanOut publishes the rendered note through every profile bound to
// the feed. A missing profile or a publish failure is logged and does
// not block the remaining profiles.
func (s *Scheduler) fanOut(ctx context.Context, feed rss.Feed, content string) {
	for _, profileID := range feed.ProfileIDs() {
		prof, err := s.profiles.Get(profileID)
		if err != nil {
			logger.For(ctx).Errorf("no profile %s found for feed %s, skipping profile", profileID, feed.ID)
			continue
		}

		relays := s.profiles.RelaysFor(prof)

		difficulty := feed.PowLevel
		if difficulty == 0 {
			difficulty = prof.PowLevel
		}

		if err := s.publisher.PublishNote(ctx, prof, relays, content, eventTags(feed, prof, relays), difficulty); err != nil {
			logger.For(ctx).Errorf("failed to publish entry for feed %s through profile %s: %s", feed.ID, profileID, err)
		}
	}
}

// eventTags assembles the outbound tag set: the feed's hashtags, the
// profile's recommended relays, and a proxy tag marking the feed as
// the upstream RSS source.
func eventTags(feed rss.Feed, prof profile.Profile, relays []profile.Relay) nostr.Tags {
	tags := make(nostr.Tags, 0, len(feed.Tags)+len(prof.RecommendedRelays)+1)

	for _, tag := range feed.Tags {
		tags = append(tags, nostr.Tag{"t", tag})
	}

	for _, name := range prof.RecommendedRelays {
		for _, relay := range relays {
			if relay.Name == name {
				tags = append(tags, nostr.Tag{"r", relay.Target})
				break
			}
		}
	}

	return append(tags, nostr.Tag{"proxy", feed.ID, "rss"})
}
