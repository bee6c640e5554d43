package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/go-resty/resty/v2"
)

var errUnexpectedStatus = errors.New("unexpected status")

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: status}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.ErrCode != "" {
		apiErr.ErrCode = body.ErrCode
		apiErr.Message = body.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusBadGateway:
		apiErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = errUnexpectedStatus
	}

	return apiErr
}
