// file: model/context.go

package model

// RequestContext carries per-call data filled in while a request is served.
// It is owned by a single call and never shared.
type RequestContext struct {
	RequestID string
	Has       []string
	NClients  int
}
