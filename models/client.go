package models

// NewClientSentinel is the reserved path identity that always triggers the
// creation of a new client instead of a lookup.
const NewClientSentinel = "new"

// Client is the persisted record of a Matrix bot account managed by the
// service. The ID is the canonical Matrix user ID returned by the homeserver
// during verification and never changes once assigned.
type Client struct {
	// ID is the canonical Matrix user ID (e.g. "@bot:example.org").
	ID string `json:"id"`

	// Homeserver is the base URL of the Matrix homeserver the client
	// authenticates against.
	Homeserver string `json:"homeserver"`

	// AccessToken is the Matrix access token used by the live connection.
	AccessToken string `json:"access_token"`

	// Enabled marks the client for automatic start on service boot.
	Enabled bool `json:"enabled"`

	// Autojoin controls whether the bot accepts room invites.
	Autojoin bool `json:"autojoin"`

	// Sync controls whether the bot runs the /sync loop when started.
	Sync bool `json:"sync"`

	// DisplayName is the profile display name pushed to the homeserver.
	DisplayName string `json:"displayname"`

	// AvatarURL is the mxc:// URI of the profile avatar.
	AvatarURL string `json:"avatar_url"`

	// NextBatch is the resumable /sync position.
	NextBatch string `json:"next_batch"`

	// FilterID is the server-side sync filter identifier.
	FilterID string `json:"filter_id"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// NewClientFromPayload builds a fresh record for identity id using the
// documented defaults for every field absent from payload.
func NewClientFromPayload(id string, payload ClientPayload) Client {
	client := Client{
		ID:       id,
		Enabled:  true,
		Autojoin: true,
		Sync:     true,
	}

	if payload.Homeserver != nil {
		client.Homeserver = *payload.Homeserver
	}
	if payload.AccessToken != nil {
		client.AccessToken = *payload.AccessToken
	}
	if payload.Enabled != nil {
		client.Enabled = *payload.Enabled
	}
	if payload.Autojoin != nil {
		client.Autojoin = *payload.Autojoin
	}
	if payload.Sync != nil {
		client.Sync = *payload.Sync
	}
	if payload.DisplayName != nil {
		client.DisplayName = *payload.DisplayName
	}
	if payload.AvatarURL != nil {
		client.AvatarURL = *payload.AvatarURL
	}

	return client
}

// ClientPayload is the body of a create or update request.
// Only non-nil fields are applied (partial update support).
type ClientPayload struct {
	Homeserver  *string `json:"homeserver,omitempty"`
	AccessToken *string `json:"access_token,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	Autojoin    *bool   `json:"autojoin,omitempty"`
	Sync        *bool   `json:"sync,omitempty"`
	DisplayName *string `json:"displayname,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`

	// Started asks for the live connection to be started (true) or
	// stopped (false).
	Started *bool `json:"started,omitempty"`
}

// ChangesAccessDetails reports whether the payload carries a homeserver or
// access token.
func (p ClientPayload) ChangesAccessDetails() bool {
	return p.Homeserver != nil || p.AccessToken != nil
}

// ClientView is the API representation of a client together with its
// runtime state.
type ClientView struct {
	ID          string `json:"id"`
	Homeserver  string `json:"homeserver"`
	AccessToken string `json:"access_token,omitempty"`
	Enabled     bool   `json:"enabled"`
	Started     bool   `json:"started"`
	Autojoin    bool   `json:"autojoin"`
	Sync        bool   `json:"sync"`
	DisplayName string `json:"displayname"`
	AvatarURL   string `json:"avatar_url"`

	// References lists the owners currently depending on the client.
	References []string `json:"references"`
}

// StringPtr returns a pointer to s. Handy for building payloads.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
