package httpd

import (
	"fmt"
	"io"

	billy "github.com/go-git/go-billy/v5"
)

// Load reads the file at path from fsys fully into memory and returns
// its exact contents. The file is sized up front and the read must
// produce exactly that many bytes; a short read (file shrank between
// stat and read) is a load failure, never a silently truncated result.
// Directories fail to load.
func Load(fsys billy.Basic, path string) ([]byte, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, fi.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("short read of %s: %w", path, err)
	}
	return buf, nil
}
