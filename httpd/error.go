package httpd

import "fmt"

// StatusError is a request failure that maps directly to an HTTP status
// line and a JSON error body. Every failure in the request pipeline is
// one of these; none terminate the process.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

var (
	errMalformed   = &StatusError{Code: 400, Message: "Malformed request"}
	errTraversal   = &StatusError{Code: 403, Message: "Forbidden path traversal"}
	errEscapesRoot = &StatusError{Code: 403, Message: "Forbidden path"}
	errNotFound    = &StatusError{Code: 404, Message: "File not found"}
	errSendFailed  = &StatusError{Code: 500, Message: "Failed to send response body"}
	errOnlyGet     = &StatusError{Code: 501, Message: "Only GET is supported"}
)

// statusText maps a status code to its reason phrase. Codes outside the
// fixed set get a generic phrase rather than an empty one.
func statusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 400:
		return "Bad Request"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	}
	return "Error"
}
