package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/mikeydub/go-nostrss/util"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0000000000000000000000000000000000000000000000000000000000000001"

func TestSecretKeyHex(t *testing.T) {
	p := Profile{ID: "default", PrivateKey: testKey}

	sk, err := p.SecretKey()
	require.NoError(t, err)
	assert.Equal(t, testKey, sk)
}

func TestSecretKeyNsec(t *testing.T) {
	nsec, err := nip19.EncodePrivateKey(testKey)
	require.NoError(t, err)

	p := Profile{ID: "default", PrivateKey: nsec}

	sk, err := p.SecretKey()
	require.NoError(t, err)
	assert.Equal(t, testKey, sk)
}

func TestSecretKeyInvalid(t *testing.T) {
	for name, key := range map[string]string{
		"empty":        "",
		"whitespace":   "   ",
		"not hex":      "zzzz",
		"bad nsec":     "nsec1notakey",
		"wrong length": "abcd1234",
	} {
		t.Run(name, func(t *testing.T) {
			p := Profile{ID: "default", PrivateKey: key}
			_, err := p.SecretKey()
			assert.Error(t, err)
		})
	}
}

func TestNpubMatchesDerivedPublicKey(t *testing.T) {
	p := Profile{ID: "default", PrivateKey: testKey}

	pk, err := nostr.GetPublicKey(testKey)
	require.NoError(t, err)
	expected, err := nip19.EncodePublicKey(pk)
	require.NoError(t, err)

	npub, err := p.Npub()
	require.NoError(t, err)
	assert.Equal(t, expected, npub)
	assert.True(t, strings.HasPrefix(npub, "npub1"))
}

func TestResolveMetadataPrefersProfileFields(t *testing.T) {
	viper.Set("NOSTR_NAME", "env-name")
	viper.Set("NOSTR_DESCRIPTION", "env-about")

	p := Profile{
		ID:          "default",
		PrivateKey:  testKey,
		Name:        util.StringToPointer("profile-name"),
		Description: util.StringToPointer("profile-about"),
	}

	meta := ResolveMetadata(context.Background(), p)
	assert.Equal(t, "profile-name", meta.Name)
	assert.Equal(t, "profile-about", meta.About)
}

func TestResolveMetadataFallsBackToEnv(t *testing.T) {
	viper.Set("NOSTR_NAME", "env-name")
	viper.Set("NOSTR_PICTURE", "https://example.com/pic.png")

	meta := ResolveMetadata(context.Background(), Profile{ID: "default", PrivateKey: testKey})
	assert.Equal(t, "env-name", meta.Name)
	assert.Equal(t, "https://example.com/pic.png", meta.Picture)
}

func TestResolveMetadataAboutAlias(t *testing.T) {
	viper.Set("NOSTR_DESCRIPTION", "env-about")

	p := Profile{ID: "default", PrivateKey: testKey, About: util.StringToPointer("legacy-about")}

	meta := ResolveMetadata(context.Background(), p)
	assert.Equal(t, "legacy-about", meta.About)
}

func TestFromEnv(t *testing.T) {
	viper.Set("NOSTR_PK", testKey)
	viper.Set("NOSTR_NAME", "env-name")
	viper.Set("DEFAULT_POW_LEVEL", 4)

	p, err := FromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultID, p.ID)
	assert.Equal(t, testKey, p.PrivateKey)
	assert.Equal(t, "env-name", util.FromPointer(p.Name))
	assert.Equal(t, 4, p.PowLevel)
}

func TestFromEnvRequiresKey(t *testing.T) {
	viper.Set("NOSTR_PK", "")

	_, err := FromEnv(context.Background())
	assert.Error(t, err)
}
