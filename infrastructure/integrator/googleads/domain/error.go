package gadsdomain

import "net/http"

// ErrorResponse is the error envelope of the Google Ads REST API.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsAuthError reports whether the error means the access token is expired
// or invalid, in which case a refresh-and-retry is worth attempting.
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == http.StatusUnauthorized || e.Error.Status == "UNAUTHENTICATED"
}
