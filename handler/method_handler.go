// file: handler/method_handler.go

package handler

import (
	"context"
	"net/http"
	"scoring-api/common"
	"scoring-api/logger"
	"scoring-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// Dispatcher is implemented by service.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, raw map[string]any, reqCtx *model.RequestContext) (any, *common.AppError)
}

// MethodHandler serves the JSON method endpoint.
type MethodHandler struct {
	dispatcher   Dispatcher
	maxBodyBytes int64
}

func NewMethodHandler(dispatcher Dispatcher, maxBodyBytes int64) *MethodHandler {
	return &MethodHandler{dispatcher: dispatcher, maxBodyBytes: maxBodyBytes}
}

func requestID(r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// Method godoc
// @Summary      Call a scoring method
// @Description  Validates the envelope, authenticates the caller and dispatches to online_score or clients_interests.
// @Tags         method
// @Accept       json
// @Produce      json
// @Param        request body object true "Envelope with account, login, method, token and arguments"
// @Success      200  {object}  model.Response
// @Failure      400  {object}  common.AppError "Bad Request: malformed JSON or unknown method"
// @Failure      403  {object}  common.AppError "Forbidden: token does not match"
// @Failure      422  {object}  common.AppError "Invalid Request: a field failed validation"
// @Failure      500  {object}  common.AppError "Internal Server Error: store failure"
// @Router       /method [post]
func (h *MethodHandler) Method(w http.ResponseWriter, r *http.Request) *common.AppError {
	reqCtx := &model.RequestContext{RequestID: requestID(r)}
	w.Header().Set(requestIDHeader, reqCtx.RequestID)

	log := logger.Log.WithFields(logrus.Fields{
		"request_id": reqCtx.RequestID,
		"path":       r.URL.Path,
	})

	raw, appErr := common.DecodeRequest(r, h.maxBodyBytes)
	if appErr != nil {
		log.WithError(appErr.Err).Info("Unable to parse request body")
		return appErr
	}

	result, appErr := h.dispatcher.Dispatch(r.Context(), raw, reqCtx)
	if appErr != nil {
		log.WithField("status_code", appErr.Code).Info(appErr.Message)
		return appErr
	}

	log.WithFields(logrus.Fields{
		"has":      reqCtx.Has,
		"nclients": reqCtx.NClients,
	}).Info("Request served")

	common.SendOK(w, result)
	return nil
}

// NotFound answers every unrouted path.
func NotFound(w http.ResponseWriter, r *http.Request) *common.AppError {
	return common.NewCodeError(common.NotFound, nil)
}
