package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	whoAmIPath   = "/_matrix/client/v3/account/whoami"
	versionsPath = "/_matrix/client/versions"
	profilePath  = "/_matrix/client/v3/profile/"
)

type whoAmIResponse struct {
	UserID   string `json:"user_id"`
	DeviceID string `json:"device_id,omitempty"`
}

type versionsResponse struct {
	Versions []string `json:"versions"`
}

type displayNameRequest struct {
	DisplayName string `json:"displayname"`
}

type avatarURLRequest struct {
	AvatarURL string `json:"avatar_url"`
}

// API issues Client-Server API requests against any homeserver. It
// implements both [Verifier] and [Connector].
type API struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAPI returns an API whose requests are bounded by timeout.
func NewAPI(timeout time.Duration, log *logger.Logger) *API {
	return &API{
		client: utils.NewHTTPClient(timeout),
		logger: log,
	}
}

// Close releases idle keep-alive connections.
func (a *API) Close() {
	a.client.CloseIdleConnections()
}

// Verify implements [Verifier].
func (a *API) Verify(ctx context.Context, homeserver, token string) (string, error) {
	userID, err := a.WhoAmI(ctx, homeserver, token)
	if err != nil {
		var matrixErr *Error
		switch {
		case errors.Is(err, ErrInvalidCredential):
		case errors.As(err, &matrixErr):
			err = a.reachabilityHint(ctx, homeserver, err)
		case !errors.Is(err, ErrEndpointUnreachable):
			err = fmt.Errorf("%w: %w", ErrEndpointUnreachable, err)
		}
		a.logger.Debug().Err(err).Str("homeserver", homeserver).Msg("access token verification failed")
		return "", err
	}

	return userID, nil
}

// Connect implements [Connector].
func (a *API) Connect(ctx context.Context, client models.Client) (Connection, error) {
	userID, err := a.WhoAmI(ctx, client.Homeserver, client.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", client.ID, err)
	}
	if userID != client.ID {
		return nil, fmt.Errorf("connect %s: %w (token owner %s)", client.ID, ErrUserIDMismatch, userID)
	}

	return &session{
		api:        a,
		homeserver: client.Homeserver,
		token:      client.AccessToken,
		userID:     userID,
	}, nil
}

// WhoAmI returns the user ID that token authenticates as on homeserver.
func (a *API) WhoAmI(ctx context.Context, homeserver, token string) (string, error) {
	var response whoAmIResponse
	if err := a.do(ctx, http.MethodGet, homeserver, whoAmIPath, token, nil, &response); err != nil {
		return "", fmt.Errorf("whoami: %w", err)
	}
	if response.UserID == "" {
		return "", fmt.Errorf("whoami: %w: response has no user_id", ErrEndpointUnreachable)
	}

	return response.UserID, nil
}

// Versions returns the spec versions advertised by homeserver. It needs no
// authentication and serves as a reachability probe.
func (a *API) Versions(ctx context.Context, homeserver string) ([]string, error) {
	var response versionsResponse
	if err := a.do(ctx, http.MethodGet, homeserver, versionsPath, "", nil, &response); err != nil {
		return nil, fmt.Errorf("versions: %w", err)
	}

	return response.Versions, nil
}

// reachabilityHint classifies a whoami error answered by the homeserver as
// ErrEndpointUnreachable and tells whether a Client-Server API answers there
// at all.
func (a *API) reachabilityHint(ctx context.Context, homeserver string, err error) error {
	versions, versionsErr := a.Versions(ctx, homeserver)
	switch {
	case versionsErr != nil:
		return fmt.Errorf("%w: %w (no Matrix client API at %s)", ErrEndpointUnreachable, err, homeserver)
	case IsErrorCode(err, ErrCodeNotFound):
		return fmt.Errorf("%w: %w (whoami not served, homeserver advertises %s)",
			ErrEndpointUnreachable, err, strings.Join(versions, ", "))
	default:
		return fmt.Errorf("%w: %w (homeserver advertises %s)", ErrEndpointUnreachable, err, strings.Join(versions, ", "))
	}
}

// SetDisplayName sets the display name of userID.
func (a *API) SetDisplayName(ctx context.Context, homeserver, token, userID, displayName string) error {
	path := profilePath + url.PathEscape(userID) + "/displayname"
	if err := a.do(ctx, http.MethodPut, homeserver, path, token, displayNameRequest{DisplayName: displayName}, nil); err != nil {
		return fmt.Errorf("set display name for %q: %w", userID, err)
	}

	return nil
}

// SetAvatarURL sets the avatar (an mxc:// URI) of userID.
func (a *API) SetAvatarURL(ctx context.Context, homeserver, token, userID, avatarURL string) error {
	path := profilePath + url.PathEscape(userID) + "/avatar_url"
	if err := a.do(ctx, http.MethodPut, homeserver, path, token, avatarURLRequest{AvatarURL: avatarURL}, nil); err != nil {
		return fmt.Errorf("set avatar url for %q: %w", userID, err)
	}

	return nil
}

// do performs one request. On 2xx the body is decoded into result when it is
// non-nil. On other statuses an *Error is returned, wrapped with
// ErrInvalidCredential when the homeserver rejected the token.
func (a *API) do(ctx context.Context, method, homeserver, path, token string, body, result any) error {
	baseURL, err := normalizeHomeserver(homeserver)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEndpointUnreachable, err)
	}

	request := a.client.R().SetContext(ctx)
	if token != "" {
		request.SetAuthToken(token)
	}
	if body != nil {
		request.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := request.Execute(method, baseURL+path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrEndpointUnreachable, method, path, err)
	}

	if !resp.IsSuccess() {
		return mapResponseError(resp)
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("%w: decoding %s response: %w", ErrEndpointUnreachable, path, err)
		}
	}

	return nil
}

func mapResponseError(resp *resty.Response) error {
	var matrixErr Error
	if err := json.Unmarshal(resp.Body(), &matrixErr); err != nil || matrixErr.Code == "" {
		matrixErr = Error{Message: strings.TrimSpace(string(resp.Body()))}
		if matrixErr.Message == "" {
			matrixErr.Message = http.StatusText(resp.StatusCode())
		}
	}
	matrixErr.StatusCode = resp.StatusCode()

	switch {
	case resp.StatusCode() == http.StatusUnauthorized,
		matrixErr.Code == ErrCodeUnknownToken,
		matrixErr.Code == ErrCodeMissingToken:
		return fmt.Errorf("%w: %w", ErrInvalidCredential, &matrixErr)
	default:
		return &matrixErr
	}
}

// normalizeHomeserver validates an http(s) base URL and strips trailing
// slashes. Unlike the CLI adapter no scheme is assumed.
func normalizeHomeserver(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty homeserver url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid homeserver url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported homeserver url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("homeserver url has no host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
