// Package status exports errors produced by the core package.
package status

import (
	"github.com/oneconcern/cloudops/pkg/errors"
)

var (
	// ErrMissingParam indicates that some required parameter was not provided
	ErrMissingParam = errors.New("missing required parameter")

	// ErrCreateDataset indicates that the dataset could not be created, and did not exist before
	ErrCreateDataset = errors.New("unable to create dataset")

	// ErrVerifyTable indicates that the existence of the destination table could not be verified
	ErrVerifyTable = errors.New("unable to verify if table exists")

	// ErrQueryJob indicates that the query job failed or could not be submitted
	ErrQueryJob = errors.New("unable to run query job")
)
