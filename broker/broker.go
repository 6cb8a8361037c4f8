// Package broker wires the bridge together: it loads feeds and
// profiles, arms the scheduler, announces profile metadata, and serves
// the grpc control plane until shut down.
package broker

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/mikeydub/go-nostrss/controlapi"
	"github.com/mikeydub/go-nostrss/env"
	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/mikeydub/go-nostrss/scheduler"
	"github.com/mikeydub/go-nostrss/service/configstore"
	"github.com/mikeydub/go-nostrss/service/logger"
	nostrpub "github.com/mikeydub/go-nostrss/service/nostr"
	"github.com/mikeydub/go-nostrss/template"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// Config points the broker at its config files. Feeds and profiles are
// optional; relays seed the default profile when it declares none.
type Config struct {
	FeedsPath    string
	ProfilesPath string
	RelaysPath   string
}

// Run boots the broker and blocks until the context is cancelled or
// the control plane fails.
func Run(ctx context.Context, cfg Config) error {
	setDefaults()
	initSentry()

	if err := template.Validate(ctx); err != nil {
		return errors.Wrap(err, "invalid boot configuration")
	}

	registry, err := buildRegistry(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to build profile registry")
	}

	publisher := nostrpub.NewPublisher()
	defer publisher.Close()

	sched := scheduler.New(rss.NewFetcher(), publisher, registry)

	if cfg.FeedsPath != "" {
		feeds, err := configstore.LoadFeeds(cfg.FeedsPath)
		if err != nil {
			return errors.Wrap(err, "failed to load feeds")
		}
		for _, feed := range feeds {
			if err := sched.AddFeed(ctx, feed); err != nil {
				return errors.Wrapf(err, "failed to schedule feed %s", feed.ID)
			}
		}
	}

	announceProfiles(ctx, registry, publisher)

	sched.Start()
	defer sched.Stop()

	service := &controlapi.Service{
		Scheduler:    sched,
		Profiles:     registry,
		Publisher:    publisher,
		FeedsPath:    cfg.FeedsPath,
		ProfilesPath: cfg.ProfilesPath,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return service.Serve(ctx, env.GetString(ctx, "GRPC_ADDRESS"))
	})

	return group.Wait()
}

func setDefaults() {
	viper.SetDefault("ENV", "local")
	viper.SetDefault("GRPC_ADDRESS", controlapi.DefaultAddress)
	viper.SetDefault("DEFAULT_POW_LEVEL", 0)
	viper.SetDefault("SENTRY_DSN", "")
	viper.AutomaticEnv()

	if viper.GetString("ENV") != "production" {
		log.SetLevel(log.DebugLevel)
	}

	env.RegisterValidation("DEFAULT_TEMPLATE", "required")
}

func initSentry() {
	if viper.GetString("SENTRY_DSN") == "" {
		log.Info("skipping sentry init")
		return
	}

	log.Info("initializing sentry...")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("SENTRY_DSN"),
		Environment:      viper.GetString("ENV"),
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("failed to start sentry: %s", err)
	}
}

// buildRegistry loads the configured profiles and guarantees a default
// profile exists: one declared in the profiles file wins, otherwise it
// is synthesized from NOSTR_PK and the NOSTR_* env vars. The default
// profile inherits the relays file when it declares no relays itself.
func buildRegistry(ctx context.Context, cfg Config) (*profile.Registry, error) {
	var profiles []profile.Profile
	if cfg.ProfilesPath != "" {
		loaded, err := configstore.LoadProfiles(cfg.ProfilesPath)
		if err != nil {
			return nil, err
		}
		profiles = loaded
	}

	def := profile.Profile{}
	extras := make([]profile.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == profile.DefaultID {
			def = p
			continue
		}
		extras = append(extras, p)
	}

	if def.ID == "" {
		envDefault, err := profile.FromEnv(ctx)
		if err != nil {
			return nil, err
		}
		def = envDefault
	}

	if len(def.Relays) == 0 && cfg.RelaysPath != "" {
		relays, err := configstore.LoadRelays(cfg.RelaysPath)
		if err != nil {
			return nil, err
		}
		def.Relays = relays
	}

	return profile.NewRegistry(def, extras...)
}

// announceProfiles broadcasts each profile's kind-0 metadata at boot.
// Best effort: a relay that rejects the event does not block startup.
func announceProfiles(ctx context.Context, registry *profile.Registry, publisher *nostrpub.Publisher) {
	for _, p := range registry.List() {
		npub, err := p.Npub()
		if err != nil {
			logger.For(ctx).Errorf("failed to derive public key for profile %s: %s", p.ID, err)
			continue
		}
		logger.For(ctx).Infof("bech32 public key for profile %s: %s", p.ID, npub)

		if err := publisher.PublishMetadata(ctx, p, registry.RelaysFor(p)); err != nil {
			logger.For(ctx).Errorf("failed to broadcast metadata for profile %s: %s", p.ID, err)
		}
	}
}
