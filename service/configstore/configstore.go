// Package configstore persists feeds, profiles, and relay sets to
// YAML or JSON files. The codec is chosen by filename extension, and
// saves are best-effort full-file overwrites.
package configstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrUnknownExtension is returned for files that are neither YAML nor JSON.
var ErrUnknownExtension = errors.New("config files must use a .yaml, .yml or .json extension")

func LoadFeeds(path string) ([]rss.Feed, error) {
	var feeds []rss.Feed
	if err := load(path, &feeds); err != nil {
		return nil, errors.Wrapf(err, "failed to load feeds from %s", path)
	}
	return feeds, nil
}

func SaveFeeds(path string, feeds []rss.Feed) error {
	if err := save(path, feeds); err != nil {
		return errors.Wrapf(err, "failed to save feeds to %s", path)
	}
	return nil
}

func LoadProfiles(path string) ([]profile.Profile, error) {
	var profiles []profile.Profile
	if err := load(path, &profiles); err != nil {
		return nil, errors.Wrapf(err, "failed to load profiles from %s", path)
	}
	return profiles, nil
}

// SaveProfiles persists the given profiles. The default profile is
// excluded: it is always reconstructed from env or the file's own
// declaration at boot.
func SaveProfiles(path string, profiles []profile.Profile) error {
	filtered := make([]profile.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == profile.DefaultID {
			continue
		}
		filtered = append(filtered, p)
	}

	if err := save(path, filtered); err != nil {
		return errors.Wrapf(err, "failed to save profiles to %s", path)
	}
	return nil
}

func LoadRelays(path string) ([]profile.Relay, error) {
	var relays []profile.Relay
	if err := load(path, &relays); err != nil {
		return nil, errors.Wrapf(err, "failed to load relays from %s", path)
	}
	return relays, nil
}

func SaveRelays(path string, relays []profile.Relay) error {
	if err := save(path, relays); err != nil {
		return errors.Wrapf(err, "failed to save relays to %s", path)
	}
	return nil
}

func load(path string, out interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(content, out)
	case ".json":
		return json.Unmarshal(content, out)
	default:
		return ErrUnknownExtension
	}
}

func save(path string, in interface{}) error {
	var content []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		content, err = yaml.Marshal(in)
	case ".json":
		content, err = json.MarshalIndent(in, "", "  ")
	default:
		return ErrUnknownExtension
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, content, 0o644)
}
