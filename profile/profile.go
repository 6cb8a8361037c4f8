package profile

import (
	"context"
	"strings"

	"github.com/mikeydub/go-nostrss/env"
	"github.com/mikeydub/go-nostrss/util"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/pkg/errors"
)

// DefaultID is the reserved id of the mandatory default profile.
const DefaultID = "default"

// Relay is a remote pub/sub endpoint accepting signed events.
type Relay struct {
	Name     string  `json:"name" yaml:"name"`
	Target   string  `json:"target" yaml:"target"`
	Active   bool    `json:"active" yaml:"active"`
	Proxy    *string `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	PowLevel int     `json:"pow_level,omitempty" yaml:"pow_level,omitempty"`
}

// Profile is a signing identity with optional display metadata and a
// set of relay endpoints. A profile with no relays inherits the
// default profile's relays at publish time.
type Profile struct {
	ID         string  `json:"id" yaml:"id"`
	PrivateKey string  `json:"private_key" yaml:"private_key"`
	Relays     []Relay `json:"relays,omitempty" yaml:"relays,omitempty"`
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	// About is kept alongside Description for compatibility with older
	// config files that used either field.
	About             *string  `json:"about,omitempty" yaml:"about,omitempty"`
	DisplayName       *string  `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Description       *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Picture           *string  `json:"picture,omitempty" yaml:"picture,omitempty"`
	Banner            *string  `json:"banner,omitempty" yaml:"banner,omitempty"`
	NIP05             *string  `json:"nip05,omitempty" yaml:"nip05,omitempty"`
	Lud16             *string  `json:"lud16,omitempty" yaml:"lud16,omitempty"`
	PowLevel          int      `json:"pow_level,omitempty" yaml:"pow_level,omitempty"`
	RecommendedRelays []string `json:"recommended_relays,omitempty" yaml:"recommended_relays,omitempty"`
}

// SecretKey returns the profile's signing key as hex, decoding a
// bech32 nsec when one is configured.
func (p Profile) SecretKey() (string, error) {
	key := strings.TrimSpace(p.PrivateKey)
	if key == "" {
		return "", errors.Errorf("profile %s has no private key", p.ID)
	}

	if strings.HasPrefix(key, "nsec") {
		prefix, data, err := nip19.Decode(key)
		if err != nil || prefix != "nsec" {
			return "", errors.Errorf("invalid nsec key for profile %s", p.ID)
		}
		key = data.(string)
	}

	if _, err := nostr.GetPublicKey(key); err != nil {
		return "", errors.Wrapf(err, "invalid private key for profile %s", p.ID)
	}

	return key, nil
}

// PublicKey derives the hex public key from the profile's private key.
func (p Profile) PublicKey() (string, error) {
	sk, err := p.SecretKey()
	if err != nil {
		return "", err
	}
	return nostr.GetPublicKey(sk)
}

// Npub derives the bech32-encoded public key from the profile's
// private key.
func (p Profile) Npub() (string, error) {
	pk, err := p.PublicKey()
	if err != nil {
		return "", err
	}
	return nip19.EncodePublicKey(pk)
}

// Metadata is the fully resolved display metadata of a profile.
type Metadata struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	About       string `json:"about,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Banner      string `json:"banner,omitempty"`
	NIP05       string `json:"nip05,omitempty"`
	Lud16       string `json:"lud16,omitempty"`
}

// ResolveMetadata yields the profile's metadata with NOSTR_* env vars
// filling any field the profile leaves unset. The profile itself is
// never mutated.
func ResolveMetadata(ctx context.Context, p Profile) Metadata {
	return Metadata{
		Name:        util.FirstNonEmptyString(util.FromPointer(p.Name), env.GetString(ctx, "NOSTR_NAME")),
		DisplayName: util.FirstNonEmptyString(util.FromPointer(p.DisplayName), env.GetString(ctx, "NOSTR_DISPLAY_NAME")),
		About:       util.FirstNonEmptyString(util.FromPointer(p.Description), util.FromPointer(p.About), env.GetString(ctx, "NOSTR_DESCRIPTION")),
		Picture:     util.FirstNonEmptyString(util.FromPointer(p.Picture), env.GetString(ctx, "NOSTR_PICTURE")),
		Banner:      util.FirstNonEmptyString(util.FromPointer(p.Banner), env.GetString(ctx, "NOSTR_BANNER")),
		NIP05:       util.FirstNonEmptyString(util.FromPointer(p.NIP05), env.GetString(ctx, "NOSTR_NIP05")),
		Lud16:       util.FirstNonEmptyString(util.FromPointer(p.Lud16), env.GetString(ctx, "NOSTR_LUD16")),
	}
}

// FromEnv synthesizes the default profile from NOSTR_PK and the
// NOSTR_* metadata env vars. Used at boot when the profiles file does
// not declare a default profile.
func FromEnv(ctx context.Context) (Profile, error) {
	pk := env.GetString(ctx, "NOSTR_PK")
	if pk == "" {
		return Profile{}, errors.New("no default profile key defined; declare one with NOSTR_PK")
	}

	p := Profile{
		ID:          DefaultID,
		PrivateKey:  pk,
		Name:        util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_NAME")),
		DisplayName: util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_DISPLAY_NAME")),
		Description: util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_DESCRIPTION")),
		Picture:     util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_PICTURE")),
		Banner:      util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_BANNER")),
		NIP05:       util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_NIP05")),
		Lud16:       util.StringToPointerIfNotEmpty(env.GetString(ctx, "NOSTR_LUD16")),
		PowLevel:    env.GetInt(ctx, "DEFAULT_POW_LEVEL"),
	}

	if _, err := p.SecretKey(); err != nil {
		return Profile{}, err
	}

	return p, nil
}
