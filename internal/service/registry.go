package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/matrix"
	"github.com/MKhiriev/go-bot-keeper/internal/store"
	"github.com/MKhiriev/go-bot-keeper/models"
)

// ClientRegistry is the in-memory index of every known client, keyed by the
// Matrix user ID. It is the only writer of that index and writes every
// change through to the ClientRepository.
//
// Mutations of one identity are serialized with a per-identity lock while
// different identities proceed in parallel. Remote verification and
// persistence complete before the lock is released.
type ClientRegistry struct {
	repo      store.ClientRepository
	verifier  matrix.Verifier
	connector matrix.Connector

	exposeAccessTokens bool

	locks *keyedMutex
	refs  *ReferenceTracker

	mu      sync.RWMutex
	clients map[string]*LiveClient

	logger *logger.Logger
}

// NewClientRegistry loads every stored record into a new registry. Loaded
// clients start in StateStopped; see workers.Autostart for starting them.
func NewClientRegistry(ctx context.Context, repo store.ClientRepository, verifier matrix.Verifier,
	connector matrix.Connector, cfg config.App, log *logger.Logger) (*ClientRegistry, error) {
	records, err := repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading clients from store: %w", err)
	}

	r := &ClientRegistry{
		repo:               repo,
		verifier:           verifier,
		connector:          connector,
		exposeAccessTokens: cfg.ExposeAccessTokens,
		locks:              newKeyedMutex(),
		clients:            make(map[string]*LiveClient, len(records)),
		logger:             log,
	}
	r.refs = newReferenceTracker(r)

	for _, record := range records {
		r.clients[record.ID] = newLiveClient(record, connector, log)
	}
	log.Info().Int("clients", len(records)).Msg("client registry loaded")

	return r, nil
}

// References returns the tracker other subsystems use to declare that they
// depend on a client.
func (r *ClientRegistry) References() *ReferenceTracker {
	return r.refs
}

// Get returns the client with the given identity. Absence is not an error.
func (r *ClientRegistry) Get(ctx context.Context, id string) (*LiveClient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	return client, ok
}

// List returns a snapshot of all clients ordered by identity. It may race
// with in-flight creations.
func (r *ClientRegistry) List(ctx context.Context) []models.ClientView {
	clients := r.snapshot()

	views := make([]models.ClientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, r.view(client))
	}

	return views
}

// View returns the view of one client or ErrClientNotFound.
func (r *ClientRegistry) View(ctx context.Context, id string) (models.ClientView, error) {
	client, ok := r.Get(ctx, id)
	if !ok {
		return models.ClientView{}, ErrClientNotFound
	}
	return r.view(client), nil
}

// CreateOrUpdate creates a client when id is models.NewClientSentinel and
// updates the existing client id otherwise. created reports which branch ran.
func (r *ClientRegistry) CreateOrUpdate(ctx context.Context, id string, payload models.ClientPayload) (view models.ClientView, created bool, err error) {
	if id == models.NewClientSentinel {
		view, err = r.Create(ctx, payload)
		return view, err == nil, err
	}

	view, err = r.Update(ctx, id, payload)
	return view, false, err
}

// Create verifies the homeserver and access token of payload and registers
// the client under the identity the token belongs to. The record gets
// enabled, autojoin and sync set to true unless the payload says otherwise.
//
// Enabled clients are started right away unless payload.Started is false. A
// failed start does not undo the registration: the client is returned with
// started=false and the error is logged.
func (r *ClientRegistry) Create(ctx context.Context, payload models.ClientPayload) (models.ClientView, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if isBlank(payload.Homeserver) {
		return models.ClientView{}, fmt.Errorf("%w: homeserver is required", ErrBadAccessDetails)
	}
	if isBlank(payload.AccessToken) {
		return models.ClientView{}, fmt.Errorf("%w: access_token is required", ErrBadAccessToken)
	}

	userID, err := r.verifier.Verify(ctx, *payload.Homeserver, *payload.AccessToken)
	if err != nil {
		log.Err(err).Str("homeserver", *payload.Homeserver).Msg("access token verification failed")
		return models.ClientView{}, mapVerifyError(err)
	}

	unlock := r.locks.Lock(userID)
	defer unlock()

	if _, ok := r.Get(ctx, userID); ok {
		return models.ClientView{}, ErrIdentityAlreadyRegistered
	}

	record := models.NewClientFromPayload(userID, payload)
	if err = r.repo.CreateClient(ctx, record); err != nil {
		if errors.Is(err, store.ErrClientAlreadyExists) {
			return models.ClientView{}, ErrIdentityAlreadyRegistered
		}
		log.Err(err).Str(logger.ClientIDField, userID).Msg("error saving new client")
		return models.ClientView{}, fmt.Errorf("error saving new client: %w", err)
	}

	client := newLiveClient(record, r.connector, r.logger)
	r.put(client)
	log.Info().Str(logger.ClientIDField, userID).Msg("client registered")

	if record.Enabled && (payload.Started == nil || *payload.Started) {
		if err = client.Start(ctx); err != nil {
			log.Err(err).Str(logger.ClientIDField, userID).Msg("registered client failed to start")
		}
	}

	return r.view(client), nil
}

// Update applies the non-nil fields of payload to client id:
//  1. a changed homeserver or access token is verified first and must still
//     belong to id, nothing is modified when that fails;
//  2. display name and avatar changes are pushed to the homeserver, a failure
//     is logged and leaves the local value untouched;
//  3. enabled, autojoin and sync are copied verbatim;
//  4. the record is persisted;
//  5. a running client is reconnected when its credentials changed, unless
//     the payload stops it, and the started directive, if any, is applied.
//
// The started directive runs after persisting. When started=true fails the
// error is returned, but the changes of steps 1 to 4 stay stored and the
// client is left stopped.
func (r *ClientRegistry) Update(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error) {
	log := logger.FromContextOr(ctx, r.logger).WithClient(id)

	unlock := r.locks.Lock(id)
	defer unlock()

	client, ok := r.Get(ctx, id)
	if !ok {
		return models.ClientView{}, ErrClientNotFound
	}

	current := client.Record()
	next := current

	credentialsChanged, err := r.applyAccessDetails(ctx, &next, payload)
	if err != nil {
		log.Err(err).Msg("access details update rejected")
		return models.ClientView{}, err
	}

	r.applyProfile(ctx, client, &next, payload, credentialsChanged)

	if payload.Enabled != nil {
		next.Enabled = *payload.Enabled
	}
	if payload.Autojoin != nil {
		next.Autojoin = *payload.Autojoin
	}
	if payload.Sync != nil {
		next.Sync = *payload.Sync
	}

	if next != current {
		if err = r.repo.UpdateClient(ctx, next); err != nil {
			log.Err(err).Msg("error saving client")
			return models.ClientView{}, fmt.Errorf("error saving client: %w", err)
		}
		client.setRecord(next)
	}

	stopRequested := payload.Started != nil && !*payload.Started
	if credentialsChanged && client.Started() && !stopRequested {
		client.Stop(ctx)
		if err = client.Start(ctx); err != nil {
			log.Err(err).Msg("client failed to reconnect with new access details")
		}
	}

	if payload.Started != nil {
		if *payload.Started {
			if err = client.Start(ctx); err != nil {
				log.Err(err).Msg("client failed to start")
				return models.ClientView{}, err
			}
		} else {
			client.Stop(ctx)
		}
	}

	return r.view(client), nil
}

// Delete stops and removes client id. It fails with ErrClientNotFound for
// unknown clients and with ErrClientInUse while references exist.
func (r *ClientRegistry) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOr(ctx, r.logger).WithClient(id)

	unlock := r.locks.Lock(id)
	defer unlock()

	client, ok := r.Get(ctx, id)
	if !ok {
		return ErrClientNotFound
	}
	if r.refs.hasReferences(id) {
		return ErrClientInUse
	}

	client.Stop(ctx)

	if err := r.repo.DeleteClient(ctx, id); err != nil && !errors.Is(err, store.ErrClientNotFound) {
		log.Err(err).Msg("error deleting client")
		return fmt.Errorf("error deleting client: %w", err)
	}

	r.mu.Lock()
	delete(r.clients, id)
	r.mu.Unlock()
	r.refs.forget(id)

	log.Info().Msg("client deleted")

	return nil
}

// Start starts client id. Starting a running client is a no-op.
func (r *ClientRegistry) Start(ctx context.Context, id string) error {
	unlock := r.locks.Lock(id)
	defer unlock()

	client, ok := r.Get(ctx, id)
	if !ok {
		return ErrClientNotFound
	}
	return client.Start(ctx)
}

// Stop stops client id. Stopping a stopped client is a no-op.
func (r *ClientRegistry) Stop(ctx context.Context, id string) error {
	unlock := r.locks.Lock(id)
	defer unlock()

	client, ok := r.Get(ctx, id)
	if !ok {
		return ErrClientNotFound
	}
	client.Stop(ctx)
	return nil
}

// EnabledClientIDs returns the identities of clients flagged for automatic
// start, ordered by identity.
func (r *ClientRegistry) EnabledClientIDs() []string {
	var ids []string
	for _, client := range r.snapshot() {
		if client.Record().Enabled {
			ids = append(ids, client.ID())
		}
	}
	return ids
}

// StopAll stops every running client.
func (r *ClientRegistry) StopAll(ctx context.Context) {
	for _, client := range r.snapshot() {
		if !client.Started() {
			continue
		}
		if err := r.Stop(ctx, client.ID()); err != nil && !errors.Is(err, ErrClientNotFound) {
			r.logger.Err(err).Str(logger.ClientIDField, client.ID()).Msg("error stopping client")
		}
	}
}

// applyAccessDetails verifies a changed homeserver or access token and
// writes them to next. It reports whether the credentials changed.
func (r *ClientRegistry) applyAccessDetails(ctx context.Context, next *models.Client, payload models.ClientPayload) (bool, error) {
	if !payload.ChangesAccessDetails() {
		return false, nil
	}

	homeserver, token := next.Homeserver, next.AccessToken
	if payload.Homeserver != nil {
		homeserver = *payload.Homeserver
	}
	if payload.AccessToken != nil {
		token = *payload.AccessToken
	}
	if homeserver == next.Homeserver && token == next.AccessToken {
		return false, nil
	}
	if strings.TrimSpace(homeserver) == "" {
		return false, fmt.Errorf("%w: homeserver can't be empty", ErrBadAccessDetails)
	}
	if strings.TrimSpace(token) == "" {
		return false, fmt.Errorf("%w: access_token can't be empty", ErrBadAccessToken)
	}

	userID, err := r.verifier.Verify(ctx, homeserver, token)
	if err != nil {
		return false, mapVerifyError(err)
	}
	if userID != next.ID {
		return false, fmt.Errorf("%w: token is for %s", ErrIdentityMismatch, userID)
	}

	next.Homeserver, next.AccessToken = homeserver, token

	return true, nil
}

// applyProfile pushes changed profile fields to the homeserver and copies
// the ones that were accepted to next.
func (r *ClientRegistry) applyProfile(ctx context.Context, client *LiveClient, next *models.Client, payload models.ClientPayload, credentialsChanged bool) {
	displayName := payload.DisplayName != nil && *payload.DisplayName != next.DisplayName
	avatarURL := payload.AvatarURL != nil && *payload.AvatarURL != next.AvatarURL
	if !displayName && !avatarURL {
		return
	}

	log := logger.FromContextOr(ctx, r.logger).WithClient(next.ID)

	conn, ok := client.connection()
	if !ok || credentialsChanged {
		var err error
		conn, err = r.connector.Connect(ctx, *next)
		if err != nil {
			log.Err(err).Msg("can't connect to update profile")
			return
		}
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				log.Err(closeErr).Msg("error closing profile connection")
			}
		}()
	}

	if displayName {
		if err := conn.SetDisplayName(ctx, *payload.DisplayName); err != nil {
			log.Err(err).Msg("error updating display name")
		} else {
			next.DisplayName = *payload.DisplayName
		}
	}
	if avatarURL {
		if err := conn.SetAvatarURL(ctx, *payload.AvatarURL); err != nil {
			log.Err(err).Msg("error updating avatar")
		} else {
			next.AvatarURL = *payload.AvatarURL
		}
	}
}

func (r *ClientRegistry) put(client *LiveClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID()] = client
}

func (r *ClientRegistry) snapshot() []*LiveClient {
	r.mu.RLock()
	clients := make([]*LiveClient, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	slices.SortFunc(clients, func(a, b *LiveClient) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return clients
}

func (r *ClientRegistry) view(client *LiveClient) models.ClientView {
	return client.view(r.exposeAccessTokens, r.refs.References(client.ID()))
}

func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrInvalidCredential):
		return fmt.Errorf("%w: %w", ErrBadAccessToken, err)
	case errors.Is(err, matrix.ErrEndpointUnreachable):
		return fmt.Errorf("%w: %w", ErrBadAccessDetails, err)
	default:
		return fmt.Errorf("error verifying access token: %w", err)
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
