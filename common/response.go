// file: common/response.go

package common

import (
	"net/http"
	"scoring-api/model"
)

// SendOK writes a successful method response.
func SendOK(w http.ResponseWriter, result any) {
	writeJSON(w, OK, model.Response{Response: result, Code: OK})
}
