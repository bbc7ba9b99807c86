package emit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// File is one generated file, with a slash-separated path relative to the
// output root.
type File struct {
	Path    string
	Content []byte
}

// Process syntax-checks, formats and optionally lints a generated Go file.
// The raw template output is checked so syntax errors carry their
// position as a *ValidationError.
func Process(f File, lint bool) (File, error) {
	if err := Validate(f.Content, f.Path); err != nil {
		return File{}, err
	}
	formatted, err := FormatGo(f.Content, f.Path)
	if err != nil {
		return File{}, err
	}
	if lint {
		diags, err := Lint(formatted, f.Path)
		if err != nil {
			return File{}, err
		}
		if len(diags) > 0 {
			errs := make([]error, len(diags))
			for i, d := range diags {
				errs[i] = fmt.Errorf("%s: %s", f.Path, d)
			}
			return File{}, errors.Join(errs...)
		}
	}
	return File{Path: f.Path, Content: formatted}, nil
}

// WriteFiles writes files below the root of fs, creating directories as
// needed. Files whose content is unchanged are not rewritten. It returns
// the paths actually written.
func WriteFiles(fs billy.Filesystem, files []File) ([]string, error) {
	var written []string
	for _, f := range files {
		existing, err := util.ReadFile(fs, f.Path)
		if err == nil && bytes.Equal(existing, f.Content) {
			continue
		}
		if dir := path.Dir(f.Path); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(fs, f.Path, f.Content, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// Stale returns the paths in files whose content on fs is missing or
// differs.
func Stale(fs billy.Filesystem, files []File) ([]string, error) {
	var stale []string
	for _, f := range files {
		existing, err := util.ReadFile(fs, f.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			stale = append(stale, f.Path)
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", f.Path, err)
		case !bytes.Equal(existing, f.Content):
			stale = append(stale, f.Path)
		}
	}
	return stale, nil
}
