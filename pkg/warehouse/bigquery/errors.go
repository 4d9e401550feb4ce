package bigquery

import (
	"strings"

	bigqueryAPI "cloud.google.com/go/bigquery"
	"github.com/oneconcern/cloudops/pkg/errors"
	"github.com/oneconcern/cloudops/pkg/warehouse/status"
	"google.golang.org/api/googleapi"
)

const reasonDuplicate = "duplicate"

func isAlreadyExists(err *googleapi.Error) bool {
	for _, item := range err.Errors {
		if item.Reason == reasonDuplicate {
			return true
		}
	}
	return strings.Contains(err.Message, "Already Exists") ||
		strings.Contains(err.Body, "ALREADY_EXISTS")
}

func apiErrors(err *googleapi.Error) error {
	switch err.Code {
	case 400:
		return status.ErrInvalid.Wrap(err)
	case 401:
		return status.ErrUnauthorized.Wrap(err)
	case 403:
		return status.ErrForbidden.Wrap(err)
	case 404:
		return status.ErrNotFound.Wrap(err)
	case 409:
		if isAlreadyExists(err) {
			return status.ErrExists.Wrap(err)
		}
		return status.ErrConflict.Wrap(err)
	default:
		return status.ErrWarehouseAPI.Wrap(err)
	}
}

// jobErrors qualifies the error reported by a completed job
func jobErrors(err *bigqueryAPI.Error) error {
	switch err.Reason {
	case reasonDuplicate:
		return status.ErrExists.Wrap(err)
	case "notFound":
		return status.ErrNotFound.Wrap(err)
	case "accessDenied":
		return status.ErrForbidden.Wrap(err)
	case "invalid", "invalidQuery":
		return status.ErrInvalid.Wrap(err)
	default:
		return status.ErrWarehouseAPI.Wrap(err)
	}
}

func toSentinelErrors(err error) error {
	// return sentinel errors defined by the status package
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErrors(apiErr)
	}
	var jobErr *bigqueryAPI.Error
	if errors.As(err, &jobErr) {
		return jobErrors(jobErr)
	}
	return err
}
