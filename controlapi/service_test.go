package controlapi

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/scheduler"
	"github.com/mikeydub/go-nostrss/service/configstore"
	"github.com/nbd-wtf/go-nostr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	testKey      = "0000000000000000000000000000000000000000000000000000000000000001"
	otherTestKey = "0000000000000000000000000000000000000000000000000000000000000002"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, url string) ([]rss.Entry, error) {
	return nil, nil
}

type stubPublisher struct{}

func (stubPublisher) PublishNote(ctx context.Context, prof profile.Profile, relays []profile.Relay, content string, tags nostr.Tags, difficulty int) error {
	return nil
}

type recordingMetadataPublisher struct {
	mu         sync.Mutex
	err        error
	profileIDs []string
}

func (p *recordingMetadataPublisher) PublishMetadata(ctx context.Context, prof profile.Profile, relays []profile.Relay) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profileIDs = append(p.profileIDs, prof.ID)
	return p.err
}

func newTestService(t *testing.T) (*Service, *recordingMetadataPublisher) {
	t.Helper()

	def := profile.Profile{
		ID:         profile.DefaultID,
		PrivateKey: testKey,
		Relays:     []profile.Relay{{Name: "local", Target: "wss://relay.local", Active: true}},
	}
	registry, err := profile.NewRegistry(def)
	require.NoError(t, err)

	meta := &recordingMetadataPublisher{}
	return &Service{
		Scheduler: scheduler.New(stubFetcher{}, stubPublisher{}, registry),
		Profiles:  registry,
		Publisher: meta,
	}, meta
}

func testFeedItem(id string) pb.FeedItem {
	return pb.FeedItem{ID: id, Name: "News", URL: "https://example.com/rss", Schedule: "*/5 * * * * *"}
}

func TestState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.State(ctx, &pb.StateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "App is alive. Number of profiles : 1", resp.State)

	require.NoError(t, svc.Profiles.Add(profile.Profile{ID: "alt", PrivateKey: otherTestKey}))

	resp, err = svc.State(ctx, &pb.StateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "App is alive. Number of profiles : 2", resp.State)
}

func TestAddAndListFeeds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFeed(ctx, &pb.AddFeedRequest{Feed: testFeedItem("news")})
	require.NoError(t, err)

	list, err := svc.FeedsList(ctx, &pb.FeedsListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Feeds, 1)
	assert.Equal(t, "news", list.Feeds[0].ID)

	info, err := svc.FeedInfo(ctx, &pb.FeedInfoRequest{ID: "news"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rss", info.Feed.URL)
}

func TestFeedInfoNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FeedInfo(context.Background(), &pb.FeedInfoRequest{ID: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAddFeedInvalidSchedule(t *testing.T) {
	svc, _ := newTestService(t)

	feed := testFeedItem("news")
	feed.Schedule = "whenever"

	_, err := svc.AddFeed(context.Background(), &pb.AddFeedRequest{Feed: feed})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	list, err := svc.FeedsList(context.Background(), &pb.FeedsListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Feeds)
}

func TestAddFeedDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFeed(ctx, &pb.AddFeedRequest{Feed: testFeedItem("news")})
	require.NoError(t, err)

	_, err = svc.AddFeed(ctx, &pb.AddFeedRequest{Feed: testFeedItem("news")})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestDeleteFeed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFeed(ctx, &pb.AddFeedRequest{Feed: testFeedItem("news")})
	require.NoError(t, err)

	_, err = svc.DeleteFeed(ctx, &pb.DeleteFeedRequest{ID: "news"})
	require.NoError(t, err)

	_, err = svc.DeleteFeed(ctx, &pb.DeleteFeedRequest{ID: "news"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAddProfileBroadcastsMetadata(t *testing.T) {
	svc, meta := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProfile(ctx, &pb.AddProfileRequest{Profile: pb.NewProfileItem{ID: "alt", PrivateKey: otherTestKey}})
	require.NoError(t, err)
	assert.Equal(t, []string{"alt"}, meta.profileIDs)

	info, err := svc.ProfileInfo(ctx, &pb.ProfileInfoRequest{ID: "alt"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info.Profile.PublicKey, "npub1"))
}

func TestAddProfileRejectsBadInput(t *testing.T) {
	svc, meta := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProfile(ctx, &pb.AddProfileRequest{Profile: pb.NewProfileItem{PrivateKey: otherTestKey}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.AddProfile(ctx, &pb.AddProfileRequest{Profile: pb.NewProfileItem{ID: "alt", PrivateKey: "garbage"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.AddProfile(ctx, &pb.AddProfileRequest{Profile: pb.NewProfileItem{ID: profile.DefaultID, PrivateKey: otherTestKey}})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	assert.Empty(t, meta.profileIDs)
}

func TestAddProfileMetadataFailureStillSucceeds(t *testing.T) {
	svc, meta := newTestService(t)
	meta.err = errors.New("all relays down")

	_, err := svc.AddProfile(context.Background(), &pb.AddProfileRequest{Profile: pb.NewProfileItem{ID: "alt", PrivateKey: otherTestKey}})
	require.NoError(t, err)

	_, err = svc.Profiles.Get("alt")
	assert.NoError(t, err)
}

func TestDeleteProfileProtectsDefault(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DeleteProfile(context.Background(), &pb.DeleteProfileRequest{ID: profile.DefaultID})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.Profiles.Get(profile.DefaultID)
	assert.NoError(t, err)
}

func TestDeleteProfileNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DeleteProfile(context.Background(), &pb.DeleteProfileRequest{ID: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSaveWritesThrough(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dir := t.TempDir()
	svc.FeedsPath = filepath.Join(dir, "feeds.yaml")
	svc.ProfilesPath = filepath.Join(dir, "profiles.yaml")

	_, err := svc.AddFeed(ctx, &pb.AddFeedRequest{Feed: testFeedItem("news"), Save: true})
	require.NoError(t, err)

	feeds, err := configstore.LoadFeeds(svc.FeedsPath)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "news", feeds[0].ID)

	_, err = svc.AddProfile(ctx, &pb.AddProfileRequest{Profile: pb.NewProfileItem{ID: "alt", PrivateKey: otherTestKey}, Save: true})
	require.NoError(t, err)

	profiles, err := configstore.LoadProfiles(svc.ProfilesPath)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "alt", profiles[0].ID)

	_, err = svc.DeleteFeed(ctx, &pb.DeleteFeedRequest{ID: "news", Save: true})
	require.NoError(t, err)

	feeds, err = configstore.LoadFeeds(svc.FeedsPath)
	require.NoError(t, err)
	assert.Empty(t, feeds)
}

func TestSaveFailureKeepsLiveChange(t *testing.T) {
	svc, _ := newTestService(t)

	// An unwritable path: the save fails but the mutation stands.
	svc.FeedsPath = filepath.Join(t.TempDir(), "missing-dir", "feeds.yaml")

	_, err := svc.AddFeed(context.Background(), &pb.AddFeedRequest{Feed: testFeedItem("news"), Save: true})
	require.NoError(t, err)

	info, err := svc.FeedInfo(context.Background(), &pb.FeedInfoRequest{ID: "news"})
	require.NoError(t, err)
	assert.Equal(t, "news", info.Feed.ID)
}

func TestStartAndStopJobAreAcceptedNoOps(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartJob(ctx, &pb.StartJobRequest{FeedID: "news"})
	assert.NoError(t, err)

	_, err = svc.StopJob(ctx, &pb.StopJobRequest{FeedID: "news"})
	assert.NoError(t, err)
}
