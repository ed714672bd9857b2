// file: model/response.go

package model

// Response is the body written for a successful call.
type Response struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

// ScoreResult is the online_score result.
type ScoreResult struct {
	Score float64 `json:"score"`
}

// AdminScore is returned to authenticated administrative callers instead of
// invoking the method handler.
var AdminScore = ScoreResult{Score: 42}
