package profile

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otherTestKey = "0000000000000000000000000000000000000000000000000000000000000002"

func defaultProfile() Profile {
	return Profile{
		ID:         DefaultID,
		PrivateKey: testKey,
		Relays:     []Relay{{Name: "local", Target: "wss://relay.local", Active: true}},
	}
}

func TestNewRegistryRequiresDefault(t *testing.T) {
	_, err := NewRegistry(Profile{ID: "not-default", PrivateKey: testKey})
	assert.Error(t, err)

	_, err = NewRegistry(Profile{ID: DefaultID, PrivateKey: "garbage"})
	assert.Error(t, err)
}

func TestNewRegistryFileDefaultReplacesEnvDefault(t *testing.T) {
	fromFile := defaultProfile()
	fromFile.PrivateKey = otherTestKey

	r, err := NewRegistry(defaultProfile(), fromFile)
	require.NoError(t, err)

	def, err := r.Get(DefaultID)
	require.NoError(t, err)
	assert.Equal(t, otherTestKey, def.PrivateKey)
	assert.Equal(t, 1, r.Len())
}

func TestAddAndGet(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	require.NoError(t, r.Add(Profile{ID: "alt", PrivateKey: otherTestKey}))

	p, err := r.Get("alt")
	require.NoError(t, err)
	assert.Equal(t, "alt", p.ID)

	_, err = r.Get("ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddRejectsDuplicateAndBadKey(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	require.NoError(t, r.Add(Profile{ID: "alt", PrivateKey: otherTestKey}))
	assert.True(t, errors.Is(r.Add(Profile{ID: "alt", PrivateKey: otherTestKey}), ErrAlreadyExists))

	assert.Error(t, r.Add(Profile{ID: "broken", PrivateKey: "garbage"}))
}

func TestDeleteProtectsDefault(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	assert.True(t, errors.Is(r.Delete(DefaultID), ErrDefaultProtected))
	assert.Equal(t, 1, r.Len())
}

func TestDelete(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	require.NoError(t, r.Add(Profile{ID: "alt", PrivateKey: otherTestKey}))
	require.NoError(t, r.Delete("alt"))

	_, err = r.Get("alt")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(r.Delete("alt"), ErrNotFound))
}

func TestListSortedByID(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	require.NoError(t, r.Add(Profile{ID: "zulu", PrivateKey: otherTestKey}))
	require.NoError(t, r.Add(Profile{ID: "alpha", PrivateKey: otherTestKey}))

	profiles := r.List()
	require.Len(t, profiles, 3)
	assert.Equal(t, "alpha", profiles[0].ID)
	assert.Equal(t, DefaultID, profiles[1].ID)
	assert.Equal(t, "zulu", profiles[2].ID)
}

func TestDefaultRelaysReturnsCopy(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	relays := r.DefaultRelays()
	require.Len(t, relays, 1)

	relays[0].Target = "wss://mutated.example.com"

	fresh := r.DefaultRelays()
	assert.Equal(t, "wss://relay.local", fresh[0].Target)
}

func TestRelaysForInheritsDefault(t *testing.T) {
	r, err := NewRegistry(defaultProfile())
	require.NoError(t, err)

	bare := Profile{ID: "bare", PrivateKey: otherTestKey}
	require.NoError(t, r.Add(bare))

	relays := r.RelaysFor(bare)
	require.Len(t, relays, 1)
	assert.Equal(t, "wss://relay.local", relays[0].Target)

	// The inheriting profile itself stays relay-less.
	stored, err := r.Get("bare")
	require.NoError(t, err)
	assert.Empty(t, stored.Relays)

	own := Profile{ID: "own", PrivateKey: otherTestKey, Relays: []Relay{{Name: "own", Target: "wss://own.example.com", Active: true}}}
	assert.Equal(t, own.Relays, r.RelaysFor(own))
}
