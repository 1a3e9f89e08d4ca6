package httpd

import "strings"

// ContentType maps a file path to a MIME type by its extension. The
// extension is whatever follows the rightmost dot in the whole path, so
// a dotted directory segment can supply it when the filename itself has
// no dot. No extension at all means text/plain; an unknown extension
// means application/octet-stream.
func ContentType(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "text/plain"
	}
	switch path[i:] {
	case ".html":
		return "text/html"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	}
	return "application/octet-stream"
}
