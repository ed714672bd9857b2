// file: common/errors_test.go

package common

import (
	"errors"
	"net/http/httptest"
	"scoring-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Send(t *testing.T) {
	rr := httptest.NewRecorder()

	NewCodeError(InvalidRequest, errors.New("field 'phone' is bad")).Send(rr)

	assert.Equal(t, 422, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Invalid Request", "code": 422}`, rr.Body.String())
}

func TestNewCodeError(t *testing.T) {
	for code, message := range ErrorMessages {
		assert.Equal(t, message, NewCodeError(code, nil).Message)
	}
	assert.Equal(t, "Unknown Error", NewCodeError(418, nil).Message)
}

func TestSendOK(t *testing.T) {
	rr := httptest.NewRecorder()

	SendOK(rr, model.ScoreResult{Score: 1.5})

	assert.Equal(t, 200, rr.Code)
	assert.JSONEq(t, `{"response": {"score": 1.5}, "code": 200}`, rr.Body.String())
}
