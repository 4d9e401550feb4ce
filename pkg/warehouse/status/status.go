// Copyright © 2018 One Concern

// Package status declares error constants returned by
// implementations of the Warehouse interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/warehouse and one
// of its implementations.
package status

import (
	"net/http"

	bigqueryAPI "cloud.google.com/go/bigquery"
	"github.com/oneconcern/cloudops/pkg/errors"
	"google.golang.org/api/googleapi"
)

var (
	// Sentinel errors returned by implementations of the interface defined by warehouse

	// ErrExists indicates that the resource already exists
	ErrExists = errors.New("already exists")

	// ErrConflict indicates a conflict with the current state of the resource, other than its prior existence
	ErrConflict = errors.New("conflict")

	// ErrNotFound indicates that the backend API call did not find the target resource
	ErrNotFound = errors.New("not found")

	// ErrInvalid indicates that the request was rejected as invalid (e.g. bad resource name)
	ErrInvalid = errors.New("invalid request")

	// ErrUnauthorized indicates that you don't provided correct credentials to the API
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates that the backend API forbids access to the target resource
	ErrForbidden = errors.New("forbidden")

	// ErrWarehouseAPI indicates any other warehouse API error
	ErrWarehouseAPI = errors.New("warehouse API error")
)

// reasonCodes maps the reason of a job error to the HTTP status the API uses for that reason.
//
// See https://cloud.google.com/bigquery/docs/error-messages
var reasonCodes = map[string]int{
	"accessDenied":             http.StatusForbidden,
	"backendError":             http.StatusInternalServerError,
	"billingNotEnabled":        http.StatusForbidden,
	"billingTierLimitExceeded": http.StatusBadRequest,
	"blocked":                  http.StatusForbidden,
	"duplicate":                http.StatusConflict,
	"internalError":            http.StatusInternalServerError,
	"invalid":                  http.StatusBadRequest,
	"invalidQuery":             http.StatusBadRequest,
	"notFound":                 http.StatusNotFound,
	"notImplemented":           http.StatusNotImplemented,
	"quotaExceeded":            http.StatusForbidden,
	"rateLimitExceeded":        http.StatusForbidden,
	"resourceInUse":            http.StatusBadRequest,
	"resourcesExceeded":        http.StatusBadRequest,
	"responseTooLarge":         http.StatusForbidden,
	"tableUnavailable":         http.StatusBadRequest,
}

// Describe extracts the code and message surfaced by the API call which caused err.
//
// Errors reported by a completed job carry no HTTP status: their code is derived
// from the job error reason.
//
// When err does not originate from a google API, the code is 0 and the message
// is the error string.
func Describe(err error) (int, string) {
	if err == nil {
		return 0, ""
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" && len(apiErr.Errors) > 0 {
			msg = apiErr.Errors[0].Message
		}
		if msg == "" {
			msg = apiErr.Body
		}
		return apiErr.Code, msg
	}
	var jobErr *bigqueryAPI.Error
	if errors.As(err, &jobErr) {
		msg := jobErr.Message
		if msg == "" {
			msg = jobErr.Reason
		}
		return reasonCodes[jobErr.Reason], msg
	}
	return 0, err.Error()
}
