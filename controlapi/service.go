// Package controlapi exposes the broker's control plane: a grpc
// service through which an operator inspects and mutates the running
// feed and profile sets, with optional write-through to the config
// files.
package controlapi

import (
	"context"
	"fmt"

	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/scheduler"
	"github.com/mikeydub/go-nostrss/service/configstore"
	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MetadataPublisher broadcasts a profile's kind-0 metadata. Satisfied
// by the nostr publisher; faked in tests.
type MetadataPublisher interface {
	PublishMetadata(ctx context.Context, prof profile.Profile, relays []profile.Relay) error
}

// Service implements pb.ControlServer over the live scheduler and
// profile registry. FeedsPath and ProfilesPath are the config files a
// save=true request writes through to; either may be empty, in which
// case the save is skipped with a log line.
type Service struct {
	Scheduler    *scheduler.Scheduler
	Profiles     *profile.Registry
	Publisher    MetadataPublisher
	FeedsPath    string
	ProfilesPath string
}

var _ pb.ControlServer = (*Service)(nil)

// State reports liveness and the number of registered profiles.
func (s *Service) State(ctx context.Context, _ *pb.StateRequest) (*pb.StateResponse, error) {
	return &pb.StateResponse{
		State: fmt.Sprintf("App is alive. Number of profiles : %d", s.Profiles.Len()),
	}, nil
}

func (s *Service) FeedsList(ctx context.Context, _ *pb.FeedsListRequest) (*pb.FeedsListResponse, error) {
	feeds := s.Scheduler.ListFeeds()

	items := make([]pb.FeedItem, 0, len(feeds))
	for _, feed := range feeds {
		items = append(items, feedToItem(feed))
	}

	return &pb.FeedsListResponse{Feeds: items}, nil
}

func (s *Service) FeedInfo(ctx context.Context, req *pb.FeedInfoRequest) (*pb.FeedInfoResponse, error) {
	feed, err := s.Scheduler.GetFeed(req.ID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "feed not found")
	}

	return &pb.FeedInfoResponse{Feed: feedToItem(feed)}, nil
}

func (s *Service) AddFeed(ctx context.Context, req *pb.AddFeedRequest) (*pb.AddFeedResponse, error) {
	feed := itemToFeed(req.Feed)

	if err := s.Scheduler.AddFeed(ctx, feed); err != nil {
		switch {
		case errors.Is(err, scheduler.ErrDuplicateFeed):
			return nil, status.Errorf(codes.AlreadyExists, "a feed with id %s already exists", feed.ID)
		default:
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	if req.Save {
		s.saveFeeds(ctx)
	}

	return &pb.AddFeedResponse{}, nil
}

func (s *Service) DeleteFeed(ctx context.Context, req *pb.DeleteFeedRequest) (*pb.DeleteFeedResponse, error) {
	if err := s.Scheduler.DeleteFeed(req.ID); err != nil {
		return nil, status.Error(codes.NotFound, "no feed found with provided id")
	}

	if req.Save {
		s.saveFeeds(ctx)
	}

	return &pb.DeleteFeedResponse{}, nil
}

func (s *Service) ProfilesList(ctx context.Context, _ *pb.ProfilesListRequest) (*pb.ProfilesListResponse, error) {
	profiles := s.Profiles.List()

	items := make([]pb.ProfileItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, profileToItem(ctx, p))
	}

	return &pb.ProfilesListResponse{Profiles: items}, nil
}

func (s *Service) ProfileInfo(ctx context.Context, req *pb.ProfileInfoRequest) (*pb.ProfileInfoResponse, error) {
	p, err := s.Profiles.Get(req.ID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "profile not found")
	}

	item := profileToItem(ctx, p)
	return &pb.ProfileInfoResponse{Profile: item}, nil
}

func (s *Service) AddProfile(ctx context.Context, req *pb.AddProfileRequest) (*pb.AddProfileResponse, error) {
	p := itemToProfile(req.Profile)

	if p.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "profile id is required")
	}
	if _, err := p.SecretKey(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.Profiles.Add(p); err != nil {
		if errors.Is(err, profile.ErrAlreadyExists) {
			return nil, status.Errorf(codes.AlreadyExists, "a profile with id %s already exists", p.ID)
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	// Announce the new identity to its relays; failure here does not
	// invalidate the registration.
	if err := s.Publisher.PublishMetadata(ctx, p, s.Profiles.RelaysFor(p)); err != nil {
		logger.For(ctx).Errorf("failed to broadcast metadata for profile %s: %s", p.ID, err)
	}

	if req.Save {
		s.saveProfiles(ctx)
	}

	return &pb.AddProfileResponse{}, nil
}

func (s *Service) DeleteProfile(ctx context.Context, req *pb.DeleteProfileRequest) (*pb.DeleteProfileResponse, error) {
	if err := s.Profiles.Delete(req.ID); err != nil {
		if errors.Is(err, profile.ErrDefaultProtected) {
			return nil, status.Error(codes.PermissionDenied, "the default profile cannot be deleted")
		}
		return nil, status.Error(codes.NotFound, "no profile with that id found")
	}

	if req.Save {
		s.saveProfiles(ctx)
	}

	return &pb.DeleteProfileResponse{}, nil
}

// StartJob is a reserved placeholder: accepted but not acted upon.
func (s *Service) StartJob(ctx context.Context, req *pb.StartJobRequest) (*pb.StartJobResponse, error) {
	return &pb.StartJobResponse{}, nil
}

// StopJob is a reserved placeholder: accepted but not acted upon.
func (s *Service) StopJob(ctx context.Context, req *pb.StopJobRequest) (*pb.StopJobResponse, error) {
	return &pb.StopJobResponse{}, nil
}

// saveFeeds persists the live feed set. A persistence failure keeps
// the live mutation and is only logged; the RPC still succeeds.
func (s *Service) saveFeeds(ctx context.Context) {
	if s.FeedsPath == "" {
		logger.For(ctx).Warn("no feeds config file configured, skipping save")
		return
	}
	if err := configstore.SaveFeeds(s.FeedsPath, s.Scheduler.ListFeeds()); err != nil {
		logger.For(ctx).Errorf("failed to persist feeds: %s", err)
	}
}

func (s *Service) saveProfiles(ctx context.Context) {
	if s.ProfilesPath == "" {
		logger.For(ctx).Warn("no profiles config file configured, skipping save")
		return
	}
	if err := configstore.SaveProfiles(s.ProfilesPath, s.Profiles.List()); err != nil {
		logger.For(ctx).Errorf("failed to persist profiles: %s", err)
	}
}

func feedToItem(feed rss.Feed) pb.FeedItem {
	return pb.FeedItem{
		ID:        feed.ID,
		Name:      feed.Name,
		URL:       feed.URL,
		Schedule:  feed.Schedule,
		Profiles:  feed.Profiles,
		Tags:      feed.Tags,
		Template:  feed.Template,
		CacheSize: feed.CacheSize,
		PowLevel:  feed.PowLevel,
	}
}

func itemToFeed(item pb.FeedItem) rss.Feed {
	return rss.Feed{
		ID:        item.ID,
		Name:      item.Name,
		URL:       item.URL,
		Schedule:  item.Schedule,
		Profiles:  item.Profiles,
		Tags:      item.Tags,
		Template:  item.Template,
		CacheSize: item.CacheSize,
		PowLevel:  item.PowLevel,
	}
}

func profileToItem(ctx context.Context, p profile.Profile) pb.ProfileItem {
	npub, err := p.Npub()
	if err != nil {
		logger.For(ctx).Errorf("failed to derive public key for profile %s: %s", p.ID, err)
	}

	relays := make([]string, 0, len(p.Relays))
	for _, relay := range p.Relays {
		relays = append(relays, relay.Target)
	}

	powLevel := p.PowLevel

	return pb.ProfileItem{
		ID:                p.ID,
		PublicKey:         npub,
		Name:              p.Name,
		Relays:            relays,
		DisplayName:       p.DisplayName,
		Description:       p.Description,
		Picture:           p.Picture,
		Banner:            p.Banner,
		Nip05:             p.NIP05,
		Lud16:             p.Lud16,
		PowLevel:          &powLevel,
		RecommendedRelays: p.RecommendedRelays,
	}
}

func itemToProfile(item pb.NewProfileItem) profile.Profile {
	p := profile.Profile{
		ID:                item.ID,
		PrivateKey:        item.PrivateKey,
		Name:              item.Name,
		DisplayName:       item.DisplayName,
		Description:       item.Description,
		About:             item.Description,
		Picture:           item.Picture,
		Banner:            item.Banner,
		NIP05:             item.Nip05,
		Lud16:             item.Lud16,
		RecommendedRelays: item.RecommendedRelays,
	}
	if item.PowLevel != nil {
		p.PowLevel = *item.PowLevel
	}
	return p
}
