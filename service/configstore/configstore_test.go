package configstore

import (
	"path/filepath"
	"testing"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0000000000000000000000000000000000000000000000000000000000000001"

func sampleFeeds() []rss.Feed {
	size := 100
	return []rss.Feed{
		{
			ID:        "news",
			Name:      "News",
			URL:       "https://example.com/rss",
			Schedule:  "*/5 * * * * *",
			Profiles:  []string{"default", "alt"},
			Tags:      []string{"rss"},
			Template:  util.StringToPointer("/etc/nostrss/news.template"),
			CacheSize: &size,
			PowLevel:  5,
		},
		{ID: "blog", Name: "Blog", URL: "https://example.com/atom", Schedule: "0 0 * * * *"},
	}
}

func TestFeedsRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "feeds"+ext)

			require.NoError(t, SaveFeeds(path, sampleFeeds()))

			loaded, err := LoadFeeds(path)
			require.NoError(t, err)
			assert.Equal(t, sampleFeeds(), loaded)
		})
	}
}

func TestProfilesRoundTripExcludesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")

	profiles := []profile.Profile{
		{ID: profile.DefaultID, PrivateKey: testKey},
		{
			ID:         "alt",
			PrivateKey: testKey,
			Name:       util.StringToPointer("Alt"),
			Relays:     []profile.Relay{{Name: "alt", Target: "wss://alt.example.com", Active: true}},
			PowLevel:   3,
		},
	}

	require.NoError(t, SaveProfiles(path, profiles))

	loaded, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, profiles[1], loaded[0])
}

func TestRelaysRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relays.json")

	relays := []profile.Relay{
		{Name: "local", Target: "wss://relay.local", Active: true},
		{Name: "paid", Target: "wss://paid.example.com", Active: false, PowLevel: 20},
	}

	require.NoError(t, SaveRelays(path, relays))

	loaded, err := LoadRelays(path)
	require.NoError(t, err)
	assert.Equal(t, relays, loaded)
}

func TestUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.toml")

	err := SaveFeeds(path, sampleFeeds())
	assert.True(t, errors.Is(err, ErrUnknownExtension))

	_, err = LoadFeeds(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
