package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHomeserver   = errors.New("homeserver is required")
	ErrInvalidHomeserver = errors.New("homeserver must be an absolute http(s) URL")
	ErrEmptyAccessToken  = errors.New("access_token is required")
	ErrInvalidAvatarURL  = errors.New("avatar_url must be empty or an mxc:// URI")
	ErrInvalidName       = errors.New("displayname contains control characters")
)
