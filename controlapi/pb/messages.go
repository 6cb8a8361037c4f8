// Package pb defines the wire contract of the nostrss control plane:
// the request/response messages, the JSON codec they travel with, and
// the grpc service descriptor binding them to the Control service.
package pb

// FeedItem mirrors a scheduled feed on the wire.
type FeedItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	Schedule  string   `json:"schedule"`
	Profiles  []string `json:"profiles,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Template  *string  `json:"template,omitempty"`
	CacheSize *int     `json:"cache_size,omitempty"`
	PowLevel  int      `json:"pow_level"`
}

// ProfileItem mirrors a registered profile on the wire. PublicKey is
// the bech32 encoding derived from the stored private key; the private
// key itself never leaves the broker.
type ProfileItem struct {
	ID                string   `json:"id"`
	PublicKey         string   `json:"public_key"`
	Name              *string  `json:"name,omitempty"`
	Relays            []string `json:"relays,omitempty"`
	DisplayName       *string  `json:"display_name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Picture           *string  `json:"picture,omitempty"`
	Banner            *string  `json:"banner,omitempty"`
	Nip05             *string  `json:"nip05,omitempty"`
	Lud16             *string  `json:"lud16,omitempty"`
	PowLevel          *int     `json:"pow_level,omitempty"`
	RecommendedRelays []string `json:"recommended_relays,omitempty"`
}

// NewProfileItem carries the fields needed to register a profile.
type NewProfileItem struct {
	ID                string   `json:"id"`
	PrivateKey        string   `json:"private_key"`
	Name              *string  `json:"name,omitempty"`
	DisplayName       *string  `json:"display_name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Picture           *string  `json:"picture,omitempty"`
	Banner            *string  `json:"banner,omitempty"`
	Nip05             *string  `json:"nip05,omitempty"`
	Lud16             *string  `json:"lud16,omitempty"`
	PowLevel          *int     `json:"pow_level,omitempty"`
	RecommendedRelays []string `json:"recommended_relays,omitempty"`
}

type StateRequest struct{}

type StateResponse struct {
	State string `json:"state"`
}

type FeedsListRequest struct{}

type FeedsListResponse struct {
	Feeds []FeedItem `json:"feeds"`
}

type FeedInfoRequest struct {
	ID string `json:"id"`
}

type FeedInfoResponse struct {
	Feed FeedItem `json:"feed"`
}

type AddFeedRequest struct {
	Feed FeedItem `json:"feed"`
	Save bool     `json:"save,omitempty"`
}

type AddFeedResponse struct{}

type DeleteFeedRequest struct {
	ID   string `json:"id"`
	Save bool   `json:"save,omitempty"`
}

type DeleteFeedResponse struct{}

type ProfilesListRequest struct{}

type ProfilesListResponse struct {
	Profiles []ProfileItem `json:"profiles"`
}

type ProfileInfoRequest struct {
	ID string `json:"id"`
}

type ProfileInfoResponse struct {
	Profile ProfileItem `json:"profile"`
}

type AddProfileRequest struct {
	Profile NewProfileItem `json:"profile"`
	Save    bool           `json:"save,omitempty"`
}

type AddProfileResponse struct{}

type DeleteProfileRequest struct {
	ID   string `json:"id"`
	Save bool   `json:"save,omitempty"`
}

type DeleteProfileResponse struct{}

type StartJobRequest struct {
	FeedID string `json:"feed_id"`
}

type StartJobResponse struct{}

type StopJobRequest struct {
	FeedID string `json:"feed_id"`
}

type StopJobResponse struct{}
