// internal/api/errors.go
package api

import (
	"fmt"

	"xibbaz/internal/objects"
)

// codeFailedAuth is the code the server answers user.login with when the
// credentials are wrong. Login maps it to a false result instead of an error.
const codeFailedAuth = -32602

// RemoteError carries a server-side error verbatim: code, message and data
// exactly as they appeared in the reply's error section.
type RemoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%d: %s: %s", e.Code, e.Message, e.Data)
}

// InvalidReplyError means the transport returned an empty body or one that
// did not decode as a JSON-RPC reply.
type InvalidReplyError struct {
	Reason string
	Body   string
}

func (e *InvalidReplyError) Error() string {
	return "invalid reply: " + e.Reason
}

// AmbiguousFilterError is a caller error: a single-result lookup matched
// more than one record. It is never retried.
type AmbiguousFilterError struct {
	Kind    objects.Kind
	Matched int
}

func (e *AmbiguousFilterError) Error() string {
	return fmt.Sprintf("filter matched too many %ss: %d", e.Kind, e.Matched)
}
