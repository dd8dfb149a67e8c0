package efa

import (
	"errors"
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(404, "404 Not Found", "XML_DM_REQUEST")
	testutil.AssertContains(t, err.Error(), "404")
	testutil.AssertContains(t, err.Error(), "XML_DM_REQUEST")
}

func TestAPIErrorIs(t *testing.T) {
	testutil.AssertErrorIs(t, NewAPIError(404, "", "OP"), ErrNotFound)
	testutil.AssertErrorIs(t, NewAPIError(400, "", "OP"), ErrInvalidRequest)
	testutil.AssertErrorIs(t, NewAPIError(500, "", "OP"), ErrServerError)
	testutil.AssertErrorIs(t, NewAPIError(503, "", "OP"), ErrServerError)

	testutil.AssertFalse(t, errors.Is(NewAPIError(404, "", "OP"), ErrServerError))
	testutil.AssertFalse(t, errors.Is(NewAPIError(418, "", "OP"), ErrNotFound))
}

func TestValidationErrorMessage(t *testing.T) {
	err := ErrMissingField("name")

	var verr *ValidationError
	testutil.AssertTrue(t, errors.As(err, &verr))
	testutil.AssertEqual(t, verr.Field, "name")
	testutil.AssertContains(t, err.Error(), "name")

	err = ErrInvalidValue("location", "poi")
	testutil.AssertTrue(t, errors.As(err, &verr))
	testutil.AssertContains(t, verr.Message, "poi")
}
