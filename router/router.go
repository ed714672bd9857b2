// file: router/router.go

package router

import (
	"net/http"
	_ "scoring-api/docs"
	"scoring-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(methodHandler *handler.MethodHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /method", handler.ErrorHandlingMiddleware(methodHandler.Method))
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	mux.Handle("/", handler.ErrorHandlingMiddleware(handler.NotFound))

	return mux
}
