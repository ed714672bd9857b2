// file: handler/method_handler_test.go

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"scoring-api/common"
	"scoring-api/logger"
	"scoring-api/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("error", "text")
	os.Exit(m.Run())
}

type mockDispatcher struct{ mock.Mock }

func (m *mockDispatcher) Dispatch(ctx context.Context, raw map[string]any, reqCtx *model.RequestContext) (any, *common.AppError) {
	args := m.Called(raw, reqCtx)
	appErr, _ := args.Get(1).(*common.AppError)
	return args.Get(0), appErr
}

func serve(h *MethodHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/method", strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.Method)(rr, req)
	return rr
}

func TestMethodHandler_OK(t *testing.T) {
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, mock.MatchedBy(func(c *model.RequestContext) bool {
		return c.RequestID == "req-1"
	})).Return(model.ScoreResult{Score: 3}, nil).Once()

	rr := serve(NewMethodHandler(d, 1<<20), `{"login": "h&f", "arguments": {"gender": 1}}`, map[string]string{"X-Request-ID": "req-1"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"response": {"score": 3}, "code": 200}`, rr.Body.String())
	assert.Equal(t, "req-1", rr.Header().Get("X-Request-ID"))

	raw := d.Calls[0].Arguments.Get(0).(map[string]any)
	args := raw["arguments"].(map[string]any)
	assert.Equal(t, json.Number("1"), args["gender"])
	d.AssertExpectations(t)
}

func TestMethodHandler_GeneratesRequestID(t *testing.T) {
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).Return(model.AdminScore, nil).Once()

	rr := serve(NewMethodHandler(d, 1<<20), `{}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
}

func TestMethodHandler_Errors(t *testing.T) {
	t.Run("dispatch error", func(t *testing.T) {
		d := new(mockDispatcher)
		d.On("Dispatch", mock.Anything, mock.Anything).Return(nil, common.NewCodeError(common.Forbidden, nil)).Once()

		rr := serve(NewMethodHandler(d, 1<<20), `{"login": "x"}`, nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error": "Forbidden", "code": 403}`, rr.Body.String())
	})

	for name, body := range map[string]string{
		"malformed": `{"login": `,
		"array":     `[1, 2]`,
		"null":      `null`,
		"trailing":  `{"login": "x"} not json`,
		"two":       `{"login": "x"}{}`,
		"too large": `{"login": "` + strings.Repeat("a", 64) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			d := new(mockDispatcher)

			rr := serve(NewMethodHandler(d, 32), body, nil)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error": "Bad Request", "code": 400}`, rr.Body.String())
			d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}

	t.Run("panic", func(t *testing.T) {
		d := new(mockDispatcher)
		d.On("Dispatch", mock.Anything, mock.Anything).Panic("boom").Once()

		rr := serve(NewMethodHandler(d, 1<<20), `{}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Internal Server Error", body["error"])
	})
}
