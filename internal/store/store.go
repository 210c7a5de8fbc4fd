// Package store is an in-process action store that restored settings are
// dispatched into.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/wizzomafizzo/frontsettings/internal/logging"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
)

// Handler applies an action payload to store state. It runs with the store
// lock held and must not dispatch.
type Handler func(ctx context.Context, payload settings.Payload) error

// Store routes dispatched actions to registered handlers.
type Store struct {
	ctx      context.Context //nolint:containedctx // logger carrier for Dispatch, which has no ctx parameter
	handlers map[string]Handler
	state    *SessionSettings
	history  []string
	mu       sync.Mutex
}

// New creates an empty root store. ctx carries the logger used for
// dispatch diagnostics.
func New(ctx context.Context) *Store {
	return &Store{
		ctx:      ctx,
		handlers: make(map[string]Handler),
	}
}

// Register binds a fully qualified action name to a handler.
func (s *Store) Register(action string, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handlers[action]; exists {
		return fmt.Errorf("action %q already registered", action)
	}
	s.handlers[action] = handler
	return nil
}

// Dispatch runs the handler registered for action. Unknown actions and
// handler errors are logged and otherwise ignored.
func (s *Store) Dispatch(action string, payload settings.Payload, _ settings.DispatchOptions) {
	s.dispatch(action, payload)
}

func (s *Store) dispatch(action string, payload settings.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := logging.Get(s.ctx)

	handler, ok := s.handlers[action]
	if !ok {
		logger.Warn().Str("action", action).Msg("no handler for dispatched action")
		return
	}

	s.history = append(s.history, action)
	if err := handler(s.ctx, payload.Clone()); err != nil {
		logger.Error().Err(err).Str("action", action).Msg("action handler failed")
		return
	}
	logger.Debug().Str("action", action).Int("keys", len(payload)).Msg("action dispatched")
}

// History returns the actions dispatched so far, in order.
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// Namespace returns a dispatcher scoped to a store module. Actions are
// prefixed with the namespace unless DispatchOptions.Root is set.
func (s *Store) Namespace(namespace string) settings.Dispatcher {
	return &namespaced{store: s, prefix: strings.TrimSuffix(namespace, "/") + "/"}
}

type namespaced struct {
	store  *Store
	prefix string
}

func (n *namespaced) Dispatch(action string, payload settings.Payload, opts settings.DispatchOptions) {
	if !opts.Root {
		action = n.prefix + action
	}
	n.store.dispatch(action, payload)
}
