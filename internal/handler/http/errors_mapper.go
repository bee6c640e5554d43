package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
)

const errCodeInternal = "InternalError"

type errorKind struct {
	err    error
	status int
	code   string
}

// errorKinds is checked in order, the first match wins.
var errorKinds = []errorKind{
	{service.ErrClientNotFound, http.StatusNotFound, "ClientNotFound"},
	{service.ErrClientInUse, http.StatusConflict, "ClientInUse"},
	{ErrBodyNotJSON, http.StatusBadRequest, "BodyNotJSON"},
	{service.ErrBadAccessToken, http.StatusUnauthorized, "BadAccessToken"},
	{service.ErrBadAccessDetails, http.StatusBadRequest, "BadAccessDetails"},
	{service.ErrIdentityMismatch, http.StatusForbidden, "IdentityMismatch"},
	{service.ErrIdentityAlreadyRegistered, http.StatusConflict, "IdentityAlreadyRegistered"},
	{service.ErrConnectionError, http.StatusBadGateway, "ConnectionError"},
	{service.ErrInvalidPayload, http.StatusBadRequest, "InvalidPayload"},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, "InvalidPayload"},
	{service.ErrWrongCredentials, http.StatusUnauthorized, "WrongCredentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Unauthorized"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{errRouteNotFound, http.StatusNotFound, "NotFound"},
}

func errorKindFrom(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, errCodeInternal
}

// writeError answers the request with the error code and status mapped
// from err. Unexpected errors are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, code := errorKindFrom(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Str("errcode", code).Int("status", status).Send()
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{ErrCode: code, Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
