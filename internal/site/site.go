// Package site holds the HTML templates and static assets of the website.
package site

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

const (
	templatesDir = "templates"
	staticDir    = "static"
)

//go:embed templates/*.html static
var embedded embed.FS

// Open returns the site filesystem. An empty dir selects the assets compiled into the binary.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site dir %q is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Static returns the static asset tree of fsys. Directories are hidden so that
// they 404 instead of producing a listing.
func Static(fsys fs.FS) (fs.FS, error) {
	sub, err := fs.Sub(fsys, staticDir)
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}
	return filesOnly{sub}, nil
}

type filesOnly struct {
	fsys fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
