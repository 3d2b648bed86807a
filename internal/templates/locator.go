package templates

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	oerrors "github.com/modernstack/cli/internal/errors"
)

// Locator maps template names to their root directories inside a filesystem.
type Locator struct {
	fsys fs.FS
}

// NewLocator returns a Locator over fsys. A nil fsys selects the bundled templates.
func NewLocator(fsys fs.FS) *Locator {
	if fsys == nil {
		fsys = Bundled()
	}
	return &Locator{fsys: fsys}
}

// ResolvePath returns the template root for name relative to the locator's filesystem.
// It does not touch the filesystem.
func (l *Locator) ResolvePath(name string) string {
	return path.Clean(name)
}

// Exists reports whether name resolves to a directory.
func (l *Locator) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := fs.Stat(l.fsys, l.ResolvePath(name))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Sub returns the template root for name as its own filesystem.
func (l *Locator) Sub(name string) (fs.FS, error) {
	if !l.Exists(name) {
		return nil, fmt.Errorf("template %q has no bundled files: %w", name, oerrors.ErrTemplateNotFound)
	}
	sub, err := fs.Sub(l.fsys, l.ResolvePath(name))
	if err != nil {
		return nil, fmt.Errorf("opening template %q: %w: %w", name, oerrors.ErrRead, err)
	}
	return sub, nil
}

// Files lists every file of template name with the marker suffix removed, in walk order.
func (l *Locator) Files(name string) ([]string, error) {
	sub, err := l.Sub(name)
	if err != nil {
		return nil, err
	}

	var files []string
	err = fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimSuffix(p, MarkerSuffix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %q: %w: %w", name, oerrors.ErrRead, err)
	}
	return files, nil
}

// validName rejects names that would escape the filesystem root or address a nested path.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
