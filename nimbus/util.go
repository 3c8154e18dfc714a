package nimbus

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// authHeaders maps one opaque token to the fixed header set the Nimbus API
// expects. The token is forwarded unchanged into both auth headers. Tokens
// carrying bytes that are invalid in an HTTP header value fail here, before
// any network I/O happens.
func authHeaders(token string) (http.Header, error) {
	if !httpguts.ValidHeaderFieldValue(token) {
		return nil, fmt.Errorf("invalid token header value")
	}
	bearer := "Bearer " + token
	if !httpguts.ValidHeaderFieldValue(bearer) {
		return nil, fmt.Errorf("invalid authorization header value")
	}

	headers := http.Header{}
	headers.Set("AuthenticationToken", token)
	headers.Set("Authorization", bearer)
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	return headers, nil
}
