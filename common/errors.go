// file: common/errors.go

package common

import (
	"encoding/json"
	"net/http"
	"scoring-api/logger"

	"github.com/sirupsen/logrus"
)

// Status codes of the method API.
const (
	OK             = http.StatusOK
	BadRequest     = http.StatusBadRequest
	Forbidden      = http.StatusForbidden
	NotFound       = http.StatusNotFound
	InvalidRequest = http.StatusUnprocessableEntity
	InternalError  = http.StatusInternalServerError
)

// ErrorMessages holds the default message for every error code.
var ErrorMessages = map[int]string{
	BadRequest:     "Bad Request",
	Forbidden:      "Forbidden",
	NotFound:       "Not Found",
	InvalidRequest: "Invalid Request",
	InternalError:  "Internal Server Error",
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCodeError builds an AppError carrying the default message of code.
func NewCodeError(code int, err error) *AppError {
	message, ok := ErrorMessages[code]
	if !ok {
		message = "Unknown Error"
	}
	return NewAppError(code, message, err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		entry := logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		})
		if e.Code >= http.StatusInternalServerError {
			entry.Error(e.Message)
		} else {
			entry.Info(e.Message)
		}
	}

	writeJSON(w, e.Code, e)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
