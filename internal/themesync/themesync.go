// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package themesync keeps a client's view of the site theme in step with
// the server. A locally cached preference is applied immediately so the
// client never waits on the network to show something; the authoritative
// value is fetched in the background and adopted when it arrives.
package themesync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"vslsite/internal/theme"
)

// State is the lifecycle stage of a Synchronizer.
type State int

const (
	Uninitialized State = iota
	Syncing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Syncing:
		return "syncing"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PreferenceStore caches the last theme this client saw or chose.
type PreferenceStore interface {
	PreferredTheme() (string, bool)
	SetPreferredTheme(id string) error
}

// Remote is the authoritative theme source.
type Remote interface {
	CurrentTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, id string) error
}

// Synchronizer reconciles the local preference with the remote theme.
// The zero value is not usable; call New.
type Synchronizer struct {
	remote Remote
	prefs  PreferenceStore

	mu      sync.Mutex
	current string
	state   State
	// edits counts local SetTheme calls so a slow initial fetch cannot
	// overwrite a choice the user made while it was in flight.
	edits uint64
	// saved is the edit generation of the newest finished remote save
	// and saveErr its outcome.
	saved   uint64
	saveErr error

	ready     chan struct{}
	readyOnce sync.Once
	persists  sync.WaitGroup
}

// New creates a Synchronizer showing theme.DefaultID until Start runs.
func New(remote Remote, prefs PreferenceStore) *Synchronizer {
	return &Synchronizer{
		remote:  remote,
		prefs:   prefs,
		current: theme.DefaultID,
		ready:   make(chan struct{}),
	}
}

// Start applies the cached preference, if valid, and fetches the remote
// theme in the background. Ready is closed once that fetch finishes,
// whether it succeeded or not. Calling Start more than once is a no-op.
func (s *Synchronizer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state != Uninitialized {
		s.mu.Unlock()
		return
	}
	s.state = Syncing
	if id, ok := s.prefs.PreferredTheme(); ok && theme.IsValid(id) {
		s.current = id
	}
	gen := s.edits
	s.mu.Unlock()

	go func() {
		defer s.markReady()

		id, err := s.remote.CurrentTheme(ctx)
		if err != nil {
			slog.Warn("theme fetch failed, keeping local theme", "error", err, "theme", s.Current())
			return
		}
		if !theme.IsValid(id) {
			slog.Warn("remote returned unknown theme, keeping local theme", "remote", id)
			return
		}
		s.adopt(id, gen)
	}()
}

// Ready returns a channel that is closed once the initial fetch finished.
func (s *Synchronizer) Ready() <-chan struct{} {
	return s.ready
}

// State reports the lifecycle stage.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the theme being shown. It is always a catalog id.
func (s *Synchronizer) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetTheme applies id locally and in the preference cache right away,
// then saves it remotely in the background. A failed remote save is
// logged and the local value is kept. Unknown ids return
// theme.ErrInvalidTheme and nothing is sent.
func (s *Synchronizer) SetTheme(ctx context.Context, id string) error {
	if err := theme.Validate(id); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = id
	s.edits++
	gen := s.edits
	if err := s.prefs.SetPreferredTheme(id); err != nil {
		slog.Warn("save theme preference failed", "error", err, "theme", id)
	}
	s.mu.Unlock()

	s.persists.Add(1)
	go func() {
		defer s.persists.Done()
		err := s.remote.SaveTheme(context.WithoutCancel(ctx), id)
		if err != nil {
			slog.Warn("remote theme save failed, keeping local theme", "error", err, "theme", id)
			err = fmt.Errorf("save theme %q: %w", id, err)
		}

		s.mu.Lock()
		if gen > s.saved {
			s.saved = gen
			s.saveErr = err
		}
		s.mu.Unlock()
	}()
	return nil
}

// Sync fetches the remote theme now and adopts it when valid. Unlike the
// initial fetch it reports failures, and it overrides local edits.
func (s *Synchronizer) Sync(ctx context.Context) error {
	id, err := s.remote.CurrentTheme(ctx)
	if err != nil {
		return fmt.Errorf("fetch theme: %w", err)
	}
	if err := theme.Validate(id); err != nil {
		return fmt.Errorf("fetch theme: %w", err)
	}

	s.mu.Lock()
	gen := s.edits
	s.mu.Unlock()
	s.adopt(id, gen)
	return nil
}

// Wait blocks until every background save started by SetTheme returned,
// then reports the outcome of the most recent one. Earlier failures that a
// later save superseded are not reported.
func (s *Synchronizer) Wait() error {
	s.persists.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// adopt makes id current unless a local edit happened after gen.
func (s *Synchronizer) adopt(id string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.edits != gen {
		slog.Debug("remote theme superseded by local change", "remote", id, "local", s.current)
		return
	}
	s.current = id
	if err := s.prefs.SetPreferredTheme(id); err != nil {
		slog.Warn("save theme preference failed", "error", err, "theme", id)
	}
}

func (s *Synchronizer) markReady() {
	s.readyOnce.Do(func() {
		s.mu.Lock()
		s.state = Ready
		s.mu.Unlock()
		close(s.ready)
	})
}
