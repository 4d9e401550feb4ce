package bigquery

import (
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Option is a functor to pass optional parameters to the bigquery warehouse
type Option func(*bq)

// Logger specifies a logger for this warehouse
func Logger(logger *zap.Logger) Option {
	return func(b *bq) {
		if logger != nil {
			b.l = logger
		}
	}
}

// CredentialFile specifies a google service account or user credentials file.
//
// When not specified, application default credentials are used.
func CredentialFile(credFile string) Option {
	return func(b *bq) {
		b.credFile = credFile
	}
}

// Timeout specifies the timeout applied to individual dataset and table API calls.
//
// It does not apply to query jobs, which run until completion or until the
// context passed to RunQuery is done.
func Timeout(timeout time.Duration) Option {
	return func(b *bq) {
		if timeout > 0 {
			b.timeout = timeout
		}
	}
}

// ClientOptions passes extra options to the BigQuery API client, e.g. to target another endpoint
func ClientOptions(opts ...option.ClientOption) Option {
	return func(b *bq) {
		b.clientOpts = append(b.clientOpts, opts...)
	}
}
