// file: handler/error_handler.go

package handler

import (
	"fmt"
	"net/http"
	"scoring-api/common"
)

// ErrorHandlingMiddleware sends the AppError returned by next. A panic in
// next is turned into an INTERNAL_ERROR response.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				common.NewCodeError(common.InternalError, fmt.Errorf("panic: %v", rec)).Send(w)
			}
		}()

		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
