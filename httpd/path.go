package httpd

import (
	"os"
	"path/filepath"
	"strings"
)

// maxPathBytes caps the joined root+target length before any filesystem
// call, standing in for PATH_MAX without depending on the platform value.
const maxPathBytes = 4096

// Resolve maps target onto the filesystem under canonRoot and returns
// the canonical absolute path of the file to serve. canonRoot must
// itself already be canonical (see NewServer).
//
// Target "/" maps to /index.html under the root. The candidate is
// canonicalized with symlinks resolved; a candidate that cannot be
// canonicalized (missing file, broken symlink, unreadable intermediate
// directory) fails as not found. A canonical path outside canonRoot
// fails as forbidden, which catches symlink escapes that the literal
// ".." screen in the handler cannot.
func Resolve(canonRoot, target string) (string, *StatusError) {
	var candidate string
	if target == "/" {
		candidate = canonRoot + "/index.html"
	} else {
		candidate = canonRoot + target
	}
	if len(candidate) > maxPathBytes {
		return "", errNotFound
	}

	canon, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", errNotFound
	}
	if !withinRoot(canonRoot, canon) {
		return "", errEscapesRoot
	}
	return canon, nil
}

// withinRoot reports whether canonical path p is contained in canonical
// root. The comparison is separator-aware so that a sibling directory
// sharing the root as a string prefix (root "/srv/www", p "/srv/www2/x")
// does not pass. Equality passes; the loader then rejects the root
// itself as a directory.
func withinRoot(root, p string) bool {
	root = strings.TrimSuffix(root, string(os.PathSeparator))
	if p == root {
		return true
	}
	return strings.HasPrefix(p, root+string(os.PathSeparator))
}
