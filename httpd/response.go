package httpd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// WriteResponse serializes one HTTP/1.0 response onto w: status line,
// Content-Type, Content-Length, blank line, then the body. The header
// block is built in a growable buffer so a long content type can never
// truncate it. Content-Length is always the exact body length.
func WriteResponse(w io.Writer, code int, contentType string, body []byte) error {
	var hdr bytes.Buffer
	fmt.Fprintf(&hdr, "HTTP/1.0 %d %s\r\nContent-Type: %s\r\nContent-Length: %d\r\n\r\n",
		code, statusText(code), contentType, len(body))

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return err
		}
	}
	return nil
}

// WriteError sends serr as an application/json response with a
// single-field body of the form {"error": "<message>"}.
func WriteError(w io.Writer, serr *StatusError) error {
	quoted, err := json.Marshal(serr.Message)
	if err != nil {
		return err
	}
	body := fmt.Sprintf(`{"error": %s}`, quoted)
	return WriteResponse(w, serr.Code, "application/json", []byte(body))
}
