package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/matrix"
	"github.com/MKhiriev/go-bot-keeper/internal/mock"
	"github.com/MKhiriev/go-bot-keeper/internal/store"
	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testHomeserver = "https://example.org"
	testUserID     = "@bot:example.org"
	testToken      = "tok1"
)

type registryFixture struct {
	ctrl      *gomock.Controller
	repo      *mock.MockClientRepository
	verifier  *mock.MockVerifier
	connector *mock.MockConnector
	registry  *ClientRegistry
}

func newRegistryFixture(t *testing.T, records ...models.Client) *registryFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &registryFixture{
		ctrl:      ctrl,
		repo:      mock.NewMockClientRepository(ctrl),
		verifier:  mock.NewMockVerifier(ctrl),
		connector: mock.NewMockConnector(ctrl),
	}

	f.repo.EXPECT().ListClients(gomock.Any()).Return(records, nil)

	registry, err := NewClientRegistry(context.Background(), f.repo, f.verifier, f.connector,
		config.App{ExposeAccessTokens: true}, logger.Nop())
	require.NoError(t, err)
	f.registry = registry

	return f
}

// start brings client id into StateRunning and returns its connection.
func (f *registryFixture) start(t *testing.T, id string) *mock.MockConnection {
	t.Helper()

	conn := mock.NewMockConnection(f.ctrl)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, nil)
	require.NoError(t, f.registry.Start(context.Background(), id))

	return conn
}

func storedClient() models.Client {
	return models.Client{
		ID:          testUserID,
		Homeserver:  testHomeserver,
		AccessToken: testToken,
		Enabled:     true,
		Autojoin:    true,
		Sync:        true,
		DisplayName: "Bot",
		AvatarURL:   "mxc://example.org/old",
		NextBatch:   "s42",
		FilterID:    "7",
	}
}

func newClientPayload() models.ClientPayload {
	return models.ClientPayload{
		Homeserver:  models.StringPtr(testHomeserver),
		AccessToken: models.StringPtr(testToken),
	}
}

// ─────────────────────────────────────────────
// NewClientRegistry / List / View
// ─────────────────────────────────────────────

func TestNewClientRegistry_LoadsStoredClientsStopped(t *testing.T) {
	other := storedClient()
	other.ID = "@alpha:example.org"
	f := newRegistryFixture(t, storedClient(), other)

	views := f.registry.List(context.Background())
	require.Len(t, views, 2)
	assert.Equal(t, "@alpha:example.org", views[0].ID)
	assert.Equal(t, testUserID, views[1].ID)
	for _, v := range views {
		assert.False(t, v.Started)
		assert.NotNil(t, v.References)
	}
}

func TestNewClientRegistry_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	repo.EXPECT().ListClients(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	registry, err := NewClientRegistry(context.Background(), repo, mock.NewMockVerifier(ctrl),
		mock.NewMockConnector(ctrl), config.App{}, logger.Nop())

	assert.Nil(t, registry)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestView_NotFound(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.View(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, ok := f.registry.Get(context.Background(), testUserID)
	assert.False(t, ok)
}

func TestView_HidesAccessTokenByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	repo.EXPECT().ListClients(gomock.Any()).Return([]models.Client{storedClient()}, nil)

	registry, err := NewClientRegistry(context.Background(), repo, mock.NewMockVerifier(ctrl),
		mock.NewMockConnector(ctrl), config.App{}, logger.Nop())
	require.NoError(t, err)

	view, err := registry.View(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, view.AccessToken)
	assert.Equal(t, testHomeserver, view.Homeserver)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_RegistersAndStartsWithDefaults(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	want := models.Client{
		ID:          testUserID,
		Homeserver:  testHomeserver,
		AccessToken: testToken,
		Enabled:     true,
		Autojoin:    true,
		Sync:        true,
	}
	conn := mock.NewMockConnection(f.ctrl)

	gomock.InOrder(
		f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, testToken).Return(testUserID, nil),
		f.repo.EXPECT().CreateClient(gomock.Any(), want).Return(nil),
		f.connector.EXPECT().Connect(gomock.Any(), want).Return(conn, nil),
	)

	view, err := f.registry.Create(ctx, newClientPayload())
	require.NoError(t, err)

	assert.Equal(t, testUserID, view.ID)
	assert.True(t, view.Enabled)
	assert.True(t, view.Sync)
	assert.True(t, view.Autojoin)
	assert.True(t, view.Started)
	assert.Equal(t, testToken, view.AccessToken)
	assert.Empty(t, view.DisplayName)
	assert.Empty(t, view.AvatarURL)

	client, ok := f.registry.Get(ctx, testUserID)
	require.True(t, ok)
	assert.Equal(t, StateRunning, client.State())
	assert.Empty(t, client.Record().NextBatch)
	assert.Empty(t, client.Record().FilterID)
}

func TestCreate_SecondRegistrationOfSameIdentityFails(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, testToken).Return(testUserID, nil).Times(2)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mock.NewMockConnection(f.ctrl), nil).Times(1)

	_, err := f.registry.Create(ctx, newClientPayload())
	require.NoError(t, err)

	_, err = f.registry.Create(ctx, newClientPayload())
	assert.ErrorIs(t, err, ErrIdentityAlreadyRegistered)
	assert.Len(t, f.registry.List(ctx), 1)
}

func TestCreate_ConcurrentCreationsOfSameIdentity(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	const workers = 16

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil).Times(workers)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mock.NewMockConnection(f.ctrl), nil).Times(1)

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload := models.ClientPayload{
				Homeserver:  models.StringPtr(testHomeserver),
				AccessToken: models.StringPtr(fmt.Sprintf("tok-%d", i)),
			}
			_, errs[i] = f.registry.Create(ctx, payload)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrIdentityAlreadyRegistered)
	}
	assert.Equal(t, 1, succeeded)
	assert.Zero(t, f.registry.locks.size())
}

func TestCreate_VerificationFailures(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		wantErr   error
	}{
		{
			name:      "invalid token",
			verifyErr: fmt.Errorf("%w: M_UNKNOWN_TOKEN", matrix.ErrInvalidCredential),
			wantErr:   ErrBadAccessToken,
		},
		{
			name:      "unreachable homeserver",
			verifyErr: fmt.Errorf("%w: connection refused", matrix.ErrEndpointUnreachable),
			wantErr:   ErrBadAccessDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegistryFixture(t)
			f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tt.verifyErr)

			_, err := f.registry.Create(context.Background(), newClientPayload())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.registry.List(context.Background()))
		})
	}
}

func TestCreate_MissingAccessDetails(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.Create(context.Background(), models.ClientPayload{
		Homeserver: models.StringPtr(testHomeserver),
	})
	assert.ErrorIs(t, err, ErrBadAccessToken)

	_, err = f.registry.Create(context.Background(), models.ClientPayload{
		Homeserver:  models.StringPtr(" "),
		AccessToken: models.StringPtr(testToken),
	})
	assert.ErrorIs(t, err, ErrBadAccessDetails)
	assert.Empty(t, f.registry.List(context.Background()))
}

func TestUpdate_BlankAccessDetailsCommitNothing(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AccessToken: models.StringPtr(" "),
		Enabled:     models.BoolPtr(false),
	})
	assert.ErrorIs(t, err, ErrBadAccessToken)

	_, err = f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		Homeserver: models.StringPtr(""),
	})
	assert.ErrorIs(t, err, ErrBadAccessDetails)

	view, err := f.registry.View(context.Background(), testUserID)
	require.NoError(t, err)
	assert.True(t, view.Enabled)
	assert.Equal(t, testToken, view.AccessToken)
}

func TestCreate_StoreDuplicateMapsToAlreadyRegistered(t *testing.T) {
	f := newRegistryFixture(t)

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(store.ErrClientAlreadyExists)

	_, err := f.registry.Create(context.Background(), newClientPayload())
	assert.ErrorIs(t, err, ErrIdentityAlreadyRegistered)

	_, ok := f.registry.Get(context.Background(), testUserID)
	assert.False(t, ok)
}

func TestCreate_StoreFailureLeavesRegistryUntouched(t *testing.T) {
	f := newRegistryFixture(t)

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := f.registry.Create(context.Background(), newClientPayload())
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.Empty(t, f.registry.List(context.Background()))
}

func TestCreate_StartFailureKeepsClientStopped(t *testing.T) {
	f := newRegistryFixture(t)

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, matrix.ErrEndpointUnreachable)

	view, err := f.registry.Create(context.Background(), newClientPayload())
	require.NoError(t, err)
	assert.False(t, view.Started)

	client, ok := f.registry.Get(context.Background(), testUserID)
	require.True(t, ok)
	assert.Equal(t, StateStopped, client.State())
}

func TestCreate_DisabledOrNotStartedIsNotConnected(t *testing.T) {
	payloads := map[string]models.ClientPayload{
		"disabled": {
			Homeserver:  models.StringPtr(testHomeserver),
			AccessToken: models.StringPtr(testToken),
			Enabled:     models.BoolPtr(false),
		},
		"started false": {
			Homeserver:  models.StringPtr(testHomeserver),
			AccessToken: models.StringPtr(testToken),
			Started:     models.BoolPtr(false),
		},
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			f := newRegistryFixture(t)
			f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
			f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)

			view, err := f.registry.Create(context.Background(), payload)
			require.NoError(t, err)
			assert.False(t, view.Started)
		})
	}
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestUpdate_NotFound(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{Sync: models.BoolPtr(false)})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdate_FlagsOnlySkipsVerification(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	want := storedClient()
	want.Enabled = false
	want.Autojoin = false
	f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		Enabled:  models.BoolPtr(false),
		Autojoin: models.BoolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, view.Enabled)
	assert.False(t, view.Autojoin)
	assert.True(t, view.Sync)
}

func TestUpdate_UnchangedAccessDetailsAreNotVerified(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		Homeserver:  models.StringPtr(testHomeserver),
		AccessToken: models.StringPtr(testToken),
	})
	require.NoError(t, err)
	assert.Equal(t, testToken, view.AccessToken)
}

// A rejected token must leave every other field of the payload uncommitted.
func TestUpdate_BadTokenCommitsNothing(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	f.start(t, testUserID)

	f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, "bad").
		Return("", fmt.Errorf("%w: M_UNKNOWN_TOKEN", matrix.ErrInvalidCredential))

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AccessToken: models.StringPtr("bad"),
		DisplayName: models.StringPtr("Renamed"),
		Enabled:     models.BoolPtr(false),
		Started:     models.BoolPtr(false),
	})
	require.ErrorIs(t, err, ErrBadAccessToken)

	view, err := f.registry.View(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, testToken, view.AccessToken)
	assert.Equal(t, "Bot", view.DisplayName)
	assert.True(t, view.Enabled)
	assert.True(t, view.Started)
}

func TestUpdate_UnreachableHomeserver(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.verifier.EXPECT().Verify(gomock.Any(), "https://gone.example.org", testToken).
		Return("", matrix.ErrEndpointUnreachable)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		Homeserver: models.StringPtr("https://gone.example.org"),
	})
	assert.ErrorIs(t, err, ErrBadAccessDetails)

	client, _ := f.registry.Get(context.Background(), testUserID)
	assert.Equal(t, storedClient(), client.Record())
}

func TestUpdate_IdentityMismatchCommitsNothing(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, "tok2").Return("@other:example.org", nil)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AccessToken: models.StringPtr("tok2"),
		Sync:        models.BoolPtr(false),
	})
	require.ErrorIs(t, err, ErrIdentityMismatch)

	client, ok := f.registry.Get(context.Background(), testUserID)
	require.True(t, ok)
	assert.Equal(t, storedClient(), client.Record())

	_, ok = f.registry.Get(context.Background(), "@other:example.org")
	assert.False(t, ok)
}

func TestUpdate_NewTokenReconnectsRunningClient(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	oldConn := f.start(t, testUserID)

	want := storedClient()
	want.AccessToken = "tok2"
	newConn := mock.NewMockConnection(f.ctrl)

	gomock.InOrder(
		f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, "tok2").Return(testUserID, nil),
		f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil),
		oldConn.EXPECT().Close().Return(nil),
		f.connector.EXPECT().Connect(gomock.Any(), want).Return(newConn, nil),
	)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AccessToken: models.StringPtr("tok2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "tok2", view.AccessToken)
	assert.True(t, view.Started)
	assert.Equal(t, testUserID, view.ID)
}

func TestUpdate_ProfileThroughLiveConnection(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	conn := f.start(t, testUserID)

	want := storedClient()
	want.DisplayName = "Renamed"
	want.Sync = false

	conn.EXPECT().SetDisplayName(gomock.Any(), "Renamed").Return(nil)
	conn.EXPECT().SetAvatarURL(gomock.Any(), "mxc://example.org/new").Return(errors.New("M_FORBIDDEN"))
	f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		DisplayName: models.StringPtr("Renamed"),
		AvatarURL:   models.StringPtr("mxc://example.org/new"),
		Sync:        models.BoolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.DisplayName)
	assert.Equal(t, "mxc://example.org/old", view.AvatarURL)
	assert.False(t, view.Sync)
}

func TestUpdate_ProfileOfStoppedClientUsesShortLivedConnection(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	want := storedClient()
	want.AvatarURL = ""
	conn := mock.NewMockConnection(f.ctrl)

	gomock.InOrder(
		f.connector.EXPECT().Connect(gomock.Any(), storedClient()).Return(conn, nil),
		conn.EXPECT().SetAvatarURL(gomock.Any(), "").Return(nil),
		conn.EXPECT().Close().Return(nil),
		f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil),
	)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AvatarURL:   models.StringPtr(""),
		DisplayName: models.StringPtr("Bot"),
	})
	require.NoError(t, err)
	assert.Empty(t, view.AvatarURL)
	assert.False(t, view.Started)
}

func TestUpdate_ProfileConnectFailureIsNotFatal(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, matrix.ErrEndpointUnreachable)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		DisplayName: models.StringPtr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bot", view.DisplayName)
}

func TestUpdate_StartedDirective(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	ctx := context.Background()

	conn := mock.NewMockConnection(f.ctrl)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, nil)

	view, err := f.registry.Update(ctx, testUserID, models.ClientPayload{Started: models.BoolPtr(true)})
	require.NoError(t, err)
	assert.True(t, view.Started)

	conn.EXPECT().Close().Return(nil)
	view, err = f.registry.Update(ctx, testUserID, models.ClientPayload{Started: models.BoolPtr(false)})
	require.NoError(t, err)
	assert.False(t, view.Started)
}

func TestUpdate_NewTokenWithStopDoesNotReconnect(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	oldConn := f.start(t, testUserID)

	want := storedClient()
	want.AccessToken = "tok2"

	gomock.InOrder(
		f.verifier.EXPECT().Verify(gomock.Any(), testHomeserver, "tok2").Return(testUserID, nil),
		f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil),
		oldConn.EXPECT().Close().Return(nil),
	)

	view, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		AccessToken: models.StringPtr("tok2"),
		Started:     models.BoolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "tok2", view.AccessToken)
	assert.False(t, view.Started)
}

func TestUpdate_StartFailureKeepsPersistedChanges(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	want := storedClient()
	want.Sync = false

	gomock.InOrder(
		f.repo.EXPECT().UpdateClient(gomock.Any(), want).Return(nil),
		f.connector.EXPECT().Connect(gomock.Any(), want).Return(nil, matrix.ErrEndpointUnreachable),
	)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{
		Sync:    models.BoolPtr(false),
		Started: models.BoolPtr(true),
	})
	assert.ErrorIs(t, err, ErrConnectionError)

	view, err := f.registry.View(context.Background(), testUserID)
	require.NoError(t, err)
	assert.False(t, view.Sync)
	assert.False(t, view.Started)
}

func TestUpdate_StartFailure(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, matrix.ErrEndpointUnreachable)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{Started: models.BoolPtr(true)})
	assert.ErrorIs(t, err, ErrConnectionError)
	assert.ErrorIs(t, err, matrix.ErrEndpointUnreachable)

	client, _ := f.registry.Get(context.Background(), testUserID)
	assert.Equal(t, StateStopped, client.State())
}

func TestUpdate_StoreFailure(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := f.registry.Update(context.Background(), testUserID, models.ClientPayload{Sync: models.BoolPtr(false)})
	require.ErrorIs(t, err, store.ErrExecutingStatement)

	client, _ := f.registry.Get(context.Background(), testUserID)
	assert.True(t, client.Record().Sync)
}

func TestCreateOrUpdate_Dispatch(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)

	payload := newClientPayload()
	payload.Started = models.BoolPtr(false)
	view, created, err := f.registry.CreateOrUpdate(ctx, models.NewClientSentinel, payload)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testUserID, view.ID)

	f.repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
	view, created, err = f.registry.CreateOrUpdate(ctx, testUserID, models.ClientPayload{Sync: models.BoolPtr(false)})
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, view.Sync)

	_, created, err = f.registry.CreateOrUpdate(ctx, "@unknown:example.org", models.ClientPayload{})
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.False(t, created)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDelete_NotFound(t *testing.T) {
	f := newRegistryFixture(t)

	assert.ErrorIs(t, f.registry.Delete(context.Background(), testUserID), ErrClientNotFound)
}

func TestDelete_InUseUntilReleased(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	ctx := context.Background()
	conn := f.start(t, testUserID)

	require.NoError(t, f.registry.References().Acquire(ctx, testUserID, "plugin/echo"))

	err := f.registry.Delete(ctx, testUserID)
	require.ErrorIs(t, err, ErrClientInUse)

	// still fully operable
	view, err := f.registry.View(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, view.Started)
	assert.Equal(t, []string{"plugin/echo"}, view.References)

	f.repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
	_, err = f.registry.Update(ctx, testUserID, models.ClientPayload{Autojoin: models.BoolPtr(false)})
	require.NoError(t, err)

	f.registry.References().Release(testUserID, "plugin/echo")

	gomock.InOrder(
		conn.EXPECT().Close().Return(nil),
		f.repo.EXPECT().DeleteClient(gomock.Any(), testUserID).Return(nil),
	)
	require.NoError(t, f.registry.Delete(ctx, testUserID))

	_, err = f.registry.View(ctx, testUserID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDelete_StopErrorsAreNotFatal(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	conn := f.start(t, testUserID)

	conn.EXPECT().Close().Return(errors.New("already closed"))
	f.repo.EXPECT().DeleteClient(gomock.Any(), testUserID).Return(nil)

	require.NoError(t, f.registry.Delete(context.Background(), testUserID))
}

func TestDelete_MissingStoreRowIsTolerated(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.repo.EXPECT().DeleteClient(gomock.Any(), testUserID).Return(store.ErrClientNotFound)

	require.NoError(t, f.registry.Delete(context.Background(), testUserID))
	assert.Empty(t, f.registry.List(context.Background()))
}

func TestDelete_StoreFailureKeepsClient(t *testing.T) {
	f := newRegistryFixture(t, storedClient())

	f.repo.EXPECT().DeleteClient(gomock.Any(), testUserID).Return(store.ErrExecutingStatement)

	err := f.registry.Delete(context.Background(), testUserID)
	require.ErrorIs(t, err, store.ErrExecutingStatement)

	_, ok := f.registry.Get(context.Background(), testUserID)
	assert.True(t, ok)
}

// The identity may be registered again after deletion as a new record.
func TestDelete_ThenRegisterAgain(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	ctx := context.Background()

	f.repo.EXPECT().DeleteClient(gomock.Any(), testUserID).Return(nil)
	require.NoError(t, f.registry.Delete(ctx, testUserID))

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUserID, nil)
	f.repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)

	payload := newClientPayload()
	payload.Started = models.BoolPtr(false)
	view, err := f.registry.Create(ctx, payload)
	require.NoError(t, err)
	assert.Empty(t, view.DisplayName)
}

// ─────────────────────────────────────────────
// Start / Stop / StopAll
// ─────────────────────────────────────────────

func TestStartStop_Idempotent(t *testing.T) {
	f := newRegistryFixture(t, storedClient())
	ctx := context.Background()

	conn := mock.NewMockConnection(f.ctrl)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, nil).Times(1)
	conn.EXPECT().Close().Return(nil).Times(1)

	require.NoError(t, f.registry.Start(ctx, testUserID))
	require.NoError(t, f.registry.Start(ctx, testUserID))

	require.NoError(t, f.registry.Stop(ctx, testUserID))
	require.NoError(t, f.registry.Stop(ctx, testUserID))

	assert.ErrorIs(t, f.registry.Start(ctx, "@unknown:example.org"), ErrClientNotFound)
	assert.ErrorIs(t, f.registry.Stop(ctx, "@unknown:example.org"), ErrClientNotFound)
}

func TestEnabledClientIDsAndStopAll(t *testing.T) {
	disabled := storedClient()
	disabled.ID = "@off:example.org"
	disabled.Enabled = false
	second := storedClient()
	second.ID = "@another:example.org"

	f := newRegistryFixture(t, storedClient(), disabled, second)
	ctx := context.Background()

	assert.Equal(t, []string{"@another:example.org", testUserID}, f.registry.EnabledClientIDs())

	conn := f.start(t, testUserID)
	conn.EXPECT().Close().Return(nil)

	f.registry.StopAll(ctx)

	for _, v := range f.registry.List(ctx) {
		assert.False(t, v.Started, v.ID)
	}
}
