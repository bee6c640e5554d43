package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/matrix"
	"github.com/MKhiriev/go-bot-keeper/models"
)

// ClientState is the lifecycle state of a LiveClient.
type ClientState int

const (
	StateStopped ClientState = iota
	StateStarting
	StateRunning
	StateStopping
)

func (s ClientState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return fmt.Sprintf("ClientState(%d)", int(s))
	}
}

// LiveClient wraps a stored client record with its runtime state. The
// connection is owned exclusively by the LiveClient: it is opened on Start
// and released on Stop.
type LiveClient struct {
	mu        sync.RWMutex
	record    models.Client
	state     ClientState
	conn      matrix.Connection
	connector matrix.Connector

	logger *logger.Logger
}

func newLiveClient(record models.Client, connector matrix.Connector, log *logger.Logger) *LiveClient {
	return &LiveClient{
		record:    record,
		state:     StateStopped,
		connector: connector,
		logger:    log.WithClient(record.ID),
	}
}

// ID returns the Matrix user ID of the client.
func (c *LiveClient) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.record.ID
}

// Record returns a copy of the stored record.
func (c *LiveClient) Record() models.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.record
}

func (c *LiveClient) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Started reports whether the client holds a live connection.
func (c *LiveClient) Started() bool {
	return c.State() == StateRunning
}

// Start opens the connection. Starting a client that is not stopped is a
// no-op. When the connection can't be opened the client goes back to
// StateStopped and ErrConnectionError is returned.
func (c *LiveClient) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateStopped {
		c.mu.Unlock()
		return nil
	}
	c.state = StateStarting
	record := c.record
	c.mu.Unlock()

	conn, err := c.connector.Connect(ctx, record)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateStopped
		return fmt.Errorf("%w: %w", ErrConnectionError, err)
	}

	c.conn = conn
	c.state = StateRunning
	c.logger.Info().Str("homeserver", record.Homeserver).Msg("client started")

	return nil
}

// Stop releases the connection. Stopping a client that is not running is a
// no-op. Errors while closing the connection are logged only.
func (c *LiveClient) Stop(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}
	c.state = StateStopping
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if err := conn.Close(); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).
			Str(logger.ClientIDField, c.ID()).
			Msg("error closing client connection")
	}

	c.mu.Lock()
	c.state = StateStopped
	c.mu.Unlock()

	c.logger.Info().Msg("client stopped")
}

// connection returns the live connection when the client is running.
func (c *LiveClient) connection() (matrix.Connection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateRunning || c.conn == nil {
		return nil, false
	}
	return c.conn, true
}

func (c *LiveClient) setRecord(record models.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record = record
}

// view builds the API representation of the client.
func (c *LiveClient) view(exposeAccessToken bool, references []string) models.ClientView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view := models.ClientView{
		ID:          c.record.ID,
		Homeserver:  c.record.Homeserver,
		Enabled:     c.record.Enabled,
		Started:     c.state == StateRunning,
		Autojoin:    c.record.Autojoin,
		Sync:        c.record.Sync,
		DisplayName: c.record.DisplayName,
		AvatarURL:   c.record.AvatarURL,
		References:  references,
	}
	if exposeAccessToken {
		view.AccessToken = c.record.AccessToken
	}

	return view
}
