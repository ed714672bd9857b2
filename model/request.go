// file: model/request.go

package model

// MethodRequest is the validated envelope of a call.
type MethodRequest struct {
	Account   string         `mapstructure:"account"`
	Login     string         `mapstructure:"login"`
	Token     string         `mapstructure:"token"`
	Arguments map[string]any `mapstructure:"arguments"`
	Method    string         `mapstructure:"method"`
}

// IsAdmin reports whether the call was made with the administrative login.
func (r MethodRequest) IsAdmin(adminLogin string) bool {
	return r.Login == adminLogin
}

// OnlineScoreRequest holds validated online_score arguments. Gender is a
// pointer because 0 (unknown) is a legal value distinct from "not given".
type OnlineScoreRequest struct {
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Email     string `mapstructure:"email"`
	Phone     string `mapstructure:"phone"`
	Birthday  string `mapstructure:"birthday"`
	Gender    *int   `mapstructure:"gender"`
}

// ClientsInterestsRequest holds validated clients_interests arguments.
type ClientsInterestsRequest struct {
	ClientIDs []int  `mapstructure:"client_ids"`
	Date      string `mapstructure:"date"`
}
