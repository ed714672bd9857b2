// file: common/decode.go

package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DecodeRequest reads a JSON object from the request body. Numbers are kept
// as json.Number so integer fields can be told apart from floats.
func DecodeRequest(r *http.Request, maxBytes int64) (map[string]any, *AppError) {
	body := io.LimitReader(r.Body, maxBytes)
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, NewCodeError(BadRequest, err)
	}
	if payload == nil {
		return nil, NewCodeError(BadRequest, errors.New("request body must be a JSON object"))
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, NewCodeError(BadRequest, errors.New("request body must hold a single JSON object"))
	}
	return payload, nil
}
