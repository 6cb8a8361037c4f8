package profile

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a profile id is not registered.
	ErrNotFound = errors.New("profile not found")
	// ErrAlreadyExists is returned when adding a profile whose id is taken.
	ErrAlreadyExists = errors.New("profile already exists")
	// ErrDefaultProtected is returned when deleting the default profile.
	ErrDefaultProtected = errors.New("the default profile cannot be deleted")
)

// Registry maps profile ids to signing identities and relay bindings.
// The default profile must be present from construction and can never
// be removed.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry builds a registry seeded with the mandatory default
// profile plus any additional profiles. Profiles whose keys do not
// parse are rejected.
func NewRegistry(def Profile, profiles ...Profile) (*Registry, error) {
	if def.ID != DefaultID {
		return nil, errors.Errorf("default profile must use id %q, got %q", DefaultID, def.ID)
	}
	if _, err := def.SecretKey(); err != nil {
		return nil, err
	}

	r := &Registry{profiles: map[string]Profile{DefaultID: def}}

	for _, p := range profiles {
		if p.ID == DefaultID {
			// A default declared in the profiles file replaces the
			// env-synthesized one.
			if _, err := p.SecretKey(); err != nil {
				return nil, err
			}
			r.profiles[DefaultID] = p
			continue
		}
		if err := r.Add(p); err != nil {
			return nil, errors.Wrapf(err, "failed to register profile %s", p.ID)
		}
	}

	return r, nil
}

// Get returns the profile registered under id.
func (r *Registry) Get(id string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// Add registers a new profile. The private key must parse.
func (r *Registry) Add(p Profile) error {
	if _, err := p.SecretKey(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[p.ID]; ok {
		return ErrAlreadyExists
	}
	r.profiles[p.ID] = p
	return nil
}

// Delete removes a profile. Deleting the default profile is forbidden.
func (r *Registry) Delete(id string) error {
	if id == DefaultID {
		return ErrDefaultProtected
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}

// List returns a snapshot of all registered profiles, ordered by id.
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// DefaultRelays returns the default profile's relay set. Profiles with
// no relays of their own inherit these at publish time.
func (r *Registry) DefaultRelays() []Relay {
	r.mu.RLock()
	defer r.mu.RUnlock()

	relays := r.profiles[DefaultID].Relays
	out := make([]Relay, len(relays))
	copy(out, relays)
	return out
}

// RelaysFor resolves the relay set a profile publishes through,
// substituting the default profile's relays when the profile declares
// none. The profile is not mutated.
func (r *Registry) RelaysFor(p Profile) []Relay {
	if len(p.Relays) > 0 {
		return p.Relays
	}
	return r.DefaultRelays()
}
