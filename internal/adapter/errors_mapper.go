package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/TessVincent/prismhealth/models"
)

// mapHTTPError turns a non-2xx response into a *RemoteError. The concrete
// ledger sentinel wins over the category, the category over the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
		body.Message = strings.TrimSpace(string(resp.Body()))
	}
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode())
	}

	return &RemoteError{
		StatusCode: resp.StatusCode(),
		Message:    body.Message,
		Kind:       errorKind(resp.StatusCode(), body),
	}
}

func errorKind(status int, body models.ErrorResponse) error {
	if s := models.SentinelByCode(body.Code); s != nil {
		return s
	}
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	if c := models.CategoryByName(body.Category); c != nil {
		return c
	}
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusInternalServerError:
		return ErrServer
	}
	return ErrUnexpectedStatus
}
