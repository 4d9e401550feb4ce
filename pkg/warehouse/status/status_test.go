package status

import (
	stderr "errors"
	"fmt"
	"testing"

	bigqueryAPI "cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestDescribe(t *testing.T) {
	code, msg := Describe(nil)
	assert.Equal(t, 0, code)
	assert.Empty(t, msg)

	apiErr := &googleapi.Error{Code: 403, Message: "Access Denied: Project my-project"}
	code, msg = Describe(fmt.Errorf("create dataset: %w", ErrForbidden.Wrap(apiErr)))
	assert.Equal(t, 403, code)
	assert.Equal(t, "Access Denied: Project my-project", msg)

	code, msg = Describe(&googleapi.Error{
		Code:   409,
		Errors: []googleapi.ErrorItem{{Reason: "duplicate", Message: "Already Exists: Dataset my-project:names"}},
	})
	assert.Equal(t, 409, code)
	assert.Equal(t, "Already Exists: Dataset my-project:names", msg)

	jobErr := &bigqueryAPI.Error{Reason: "invalidQuery", Message: "Syntax error: Unexpected keyword FROM at [1:8]"}
	code, msg = Describe(fmt.Errorf("query job: %w", ErrInvalid.Wrap(jobErr)))
	assert.Equal(t, 400, code)
	assert.Equal(t, "Syntax error: Unexpected keyword FROM at [1:8]", msg)

	code, msg = Describe(&bigqueryAPI.Error{Reason: "backendError"})
	assert.Equal(t, 500, code)
	assert.Equal(t, "backendError", msg)

	code, msg = Describe(&bigqueryAPI.Error{Reason: "somethingNew", Message: "unheard of"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "unheard of", msg)

	code, msg = Describe(stderr.New("context deadline exceeded"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "context deadline exceeded", msg)
}
