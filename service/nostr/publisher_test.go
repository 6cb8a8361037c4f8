package nostr

import (
	"context"
	"testing"
	"time"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip13"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0000000000000000000000000000000000000000000000000000000000000001"

func TestMinePowReachesTarget(t *testing.T) {
	pk, err := nostr.GetPublicKey(testKey)
	require.NoError(t, err)

	evt := nostr.Event{
		PubKey:    pk,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindTextNote,
		Tags:      nostr.Tags{},
		Content:   "mined note",
	}

	require.NoError(t, minePow(context.Background(), &evt, 8))

	assert.GreaterOrEqual(t, nip13.Difficulty(evt.GetID()), 8)

	nonce := evt.Tags.GetFirst([]string{"nonce"})
	require.NotNil(t, nonce)
	assert.Equal(t, "8", (*nonce)[2])
}

func TestMinePowHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	evt := nostr.Event{Kind: nostr.KindTextNote, Tags: nostr.Tags{}}

	// An unreachable difficulty: the context has to stop the search.
	err := minePow(ctx, &evt, 255)
	assert.Error(t, err)
}

func TestPublishNoteRejectsBadKey(t *testing.T) {
	p := NewPublisher()
	defer p.Close()

	prof := profile.Profile{ID: "broken", PrivateKey: "garbage"}
	err := p.PublishNote(context.Background(), prof, nil, "note", nostr.Tags{}, 0)
	assert.Error(t, err)
}

func TestBroadcastSkipsInactiveRelays(t *testing.T) {
	p := NewPublisher()
	defer p.Close()

	prof := profile.Profile{ID: "default", PrivateKey: testKey}
	relays := []profile.Relay{
		{Name: "disabled", Target: "wss://disabled.example.com", Active: false},
	}

	// With no active relay there is nothing to attempt, so no error and
	// no connection is ever opened.
	err := p.PublishNote(context.Background(), prof, relays, "note", nostr.Tags{}, 0)
	assert.NoError(t, err)
	assert.Empty(t, p.conns)
}
