// Package nostr signs and broadcasts events to relay endpoints on
// behalf of publishing profiles.
package nostr

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip13"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mining at high difficulty is CPU-bound and can hold a worker for tens
// of seconds; keeping the pool small keeps scheduler ticks responsive.
const miningWorkers = 4

// Publisher signs events with a profile's key, optionally mines
// proof-of-work, and broadcasts to the profile's relays. Connections
// are cached per relay target and dropped on publish failure.
type Publisher struct {
	miners *workerpool.WorkerPool

	mu    sync.Mutex
	conns map[string]*nostr.Relay
}

func NewPublisher() *Publisher {
	return &Publisher{
		miners: workerpool.New(miningWorkers),
		conns:  map[string]*nostr.Relay{},
	}
}

// PublishNote signs a kind-1 text note for the profile and broadcasts
// it to every active relay in the given set. Individual relay failures
// are logged; an error is returned only when no relay accepted the
// event.
func (p *Publisher) PublishNote(ctx context.Context, prof profile.Profile, relays []profile.Relay, content string, tags nostr.Tags, difficulty int) error {
	sk, err := prof.SecretKey()
	if err != nil {
		return err
	}

	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return errors.Wrapf(err, "failed to derive public key for profile %s", prof.ID)
	}

	evt := nostr.Event{
		PubKey:    pk,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindTextNote,
		Tags:      tags,
		Content:   content,
	}

	if difficulty > 0 {
		if err := p.mine(ctx, &evt, difficulty); err != nil {
			return errors.Wrapf(err, "failed to mine event for profile %s", prof.ID)
		}
	}

	if err := evt.Sign(sk); err != nil {
		return errors.Wrapf(err, "failed to sign event for profile %s", prof.ID)
	}

	return p.broadcast(ctx, evt, relays)
}

// PublishMetadata broadcasts the profile's resolved kind-0 metadata.
func (p *Publisher) PublishMetadata(ctx context.Context, prof profile.Profile, relays []profile.Relay) error {
	sk, err := prof.SecretKey()
	if err != nil {
		return err
	}

	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return errors.Wrapf(err, "failed to derive public key for profile %s", prof.ID)
	}

	content, err := json.Marshal(profile.ResolveMetadata(ctx, prof))
	if err != nil {
		return errors.Wrapf(err, "failed to serialize metadata for profile %s", prof.ID)
	}

	evt := nostr.Event{
		PubKey:    pk,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindProfileMetadata,
		Tags:      nostr.Tags{},
		Content:   string(content),
	}

	if err := evt.Sign(sk); err != nil {
		return errors.Wrapf(err, "failed to sign metadata event for profile %s", prof.ID)
	}

	return p.broadcast(ctx, evt, relays)
}

// Close shuts the mining pool down and drops all relay connections.
func (p *Publisher) Close() {
	p.miners.StopWait()

	p.mu.Lock()
	defer p.mu.Unlock()
	for target, conn := range p.conns {
		conn.Close()
		delete(p.conns, target)
	}
}

func (p *Publisher) broadcast(ctx context.Context, evt nostr.Event, relays []profile.Relay) error {
	attempted := 0
	delivered := 0

	for _, relay := range relays {
		if !relay.Active {
			continue
		}
		attempted++

		if err := p.publishTo(ctx, relay.Target, evt); err != nil {
			logger.For(ctx).WithFields(logrus.Fields{
				"relay": relay.Name,
				"event": evt.ID,
			}).Errorf("failed to publish to %s: %s", relay.Target, err)
			continue
		}
		delivered++
	}

	if attempted > 0 && delivered == 0 {
		return errors.Errorf("event %s was not accepted by any of %d relays", evt.ID, attempted)
	}

	return nil
}

func (p *Publisher) publishTo(ctx context.Context, target string, evt nostr.Event) error {
	conn, err := p.connect(ctx, target)
	if err != nil {
		return err
	}

	if err := conn.Publish(ctx, evt); err != nil {
		p.drop(target)
		return err
	}

	return nil
}

func (p *Publisher) connect(ctx context.Context, target string) (*nostr.Relay, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.conns[target]; ok {
		return conn, nil
	}

	conn, err := nostr.RelayConnect(ctx, target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to relay %s", target)
	}

	p.conns[target] = conn
	return conn, nil
}

func (p *Publisher) drop(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.conns[target]; ok {
		conn.Close()
		delete(p.conns, target)
	}
}

// mine runs the proof-of-work search on the bounded mining pool so a
// pathological difficulty cannot stall scheduler ticks beyond the
// caller's context.
func (p *Publisher) mine(ctx context.Context, evt *nostr.Event, difficulty int) error {
	done := make(chan error, 1)

	p.miners.Submit(func() {
		done <- minePow(ctx, evt, difficulty)
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func minePow(ctx context.Context, evt *nostr.Event, target int) error {
	tag := nostr.Tag{"nonce", "", strconv.Itoa(target)}
	evt.Tags = append(evt.Tags, tag)
	last := len(evt.Tags) - 1

	for nonce := uint64(0); ; nonce++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		evt.Tags[last][1] = strconv.FormatUint(nonce, 10)
		if nip13.Difficulty(evt.GetID()) >= target {
			return nil
		}
	}
}
