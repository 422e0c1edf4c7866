package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// OAuthError is an error response from the accounts token endpoint.
type OAuthError struct {
	StatusCode  int
	Code        string // e.g. "invalid_grant"
	Description string
}

func (e *OAuthError) Error() string {
	parts := []string{fmt.Sprintf("oauth error (%d)", e.StatusCode)}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	return strings.Join(parts, ": ")
}

// wrapTokenError converts oauth2 retrieval failures into *OAuthError.
// Transport errors pass through unchanged.
func wrapTokenError(err error) error {
	if err == nil {
		return nil
	}
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		oe := &OAuthError{
			Code:        re.ErrorCode,
			Description: re.ErrorDescription,
		}
		if re.Response != nil {
			oe.StatusCode = re.Response.StatusCode
		}
		if oe.Code == "" && len(re.Body) > 0 {
			oe.Description = string(re.Body)
		}
		return oe
	}
	return err
}
