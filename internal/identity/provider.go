// Package identity holds the authenticated principal of the client process.
//
// The provider is the single source of truth for "who is logged in": the
// auth service writes to it on login, session restore and logout, and the
// sync tracker watches it to decide whether background synchronisation runs.
package identity

import (
	"context"
	"sync"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// Provider is a reactive holder of the current identity. The zero value is
// not usable; construct it with [NewProvider].
type Provider struct {
	mu       sync.RWMutex
	current  *models.Identity
	watchers map[chan *models.Identity]struct{}
}

func NewProvider() *Provider {
	return &Provider{watchers: make(map[chan *models.Identity]struct{})}
}

// Current returns the active identity, if any.
func (p *Provider) Current() (models.Identity, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return models.Identity{}, false
	}
	return *p.current, true
}

// Set replaces the current identity and notifies watchers. Setting an
// identity equal to the current one is not a change and is not broadcast.
func (p *Provider) Set(id models.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && *p.current == id {
		return
	}
	p.current = &id
	p.broadcast()
}

// Clear removes the current identity (logout) and notifies watchers.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return
	}
	p.current = nil
	p.broadcast()
}

// Watch returns a channel that first yields the current identity and then
// every subsequent change; nil means no identity. Slow consumers only ever
// see the latest value. The channel is closed once ctx is done.
func (p *Provider) Watch(ctx context.Context) <-chan *models.Identity {
	ch := make(chan *models.Identity, 1)

	p.mu.Lock()
	p.watchers[ch] = struct{}{}
	ch <- p.snapshot()
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.watchers, ch)
		close(ch)
		p.mu.Unlock()
	}()

	return ch
}

// broadcast must be called with mu held.
func (p *Provider) broadcast() {
	for ch := range p.watchers {
		// drop a stale pending value so the newest one always fits
		select {
		case <-ch:
		default:
		}
		ch <- p.snapshot()
	}
}

func (p *Provider) snapshot() *models.Identity {
	if p.current == nil {
		return nil
	}
	id := *p.current
	return &id
}
