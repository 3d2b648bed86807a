package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
	"github.com/modernstack/cli/internal/templates"
)

// Renderer mirrors a template tree into a destination directory.
// Files ending in the marker suffix are rendered; all other files are copied byte for byte.
type Renderer struct {
	src  fs.FS
	dest string
	vars map[string]any

	files []FileRecord
	dirs  []string
}

// NewRenderer returns a Renderer reading from src (rooted at the template root)
// and writing below dest, which must already exist.
func NewRenderer(src fs.FS, dest string, vars map[string]any) *Renderer {
	return &Renderer{src: src, dest: dest, vars: vars}
}

// Render walks the template depth first in name order and stops at the first error.
// Whatever was written before the error stays on disk.
func (r *Renderer) Render() error {
	return r.renderDir(".", r.dest)
}

// Files returns the files created so far.
func (r *Renderer) Files() []FileRecord {
	return r.files
}

// Dirs returns the directories created so far.
func (r *Renderer) Dirs() []string {
	return r.dirs
}

func (r *Renderer) renderDir(srcDir, destDir string) error {
	entries, err := fs.ReadDir(r.src, srcDir)
	if err != nil {
		return fmt.Errorf("listing %s: %w: %w", srcDir, oerrors.ErrRead, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !safeEntryName(name) {
			return fmt.Errorf("template entry %q in %s: unsafe name: %w", name, srcDir, oerrors.ErrRead)
		}

		srcPath := path.Join(srcDir, name)

		switch {
		case entry.IsDir():
			destPath := filepath.Join(destDir, name)
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w: %w", destPath, oerrors.ErrWrite, err)
			}
			r.dirs = append(r.dirs, srcPath)
			output.Debug("created directory", "path", srcPath)

			if err := r.renderDir(srcPath, destPath); err != nil {
				return err
			}

		case entry.Type()&fs.ModeSymlink != 0:
			return fmt.Errorf("template entry %s is a symbolic link: %w", srcPath, oerrors.ErrRead)

		case strings.HasSuffix(name, templates.MarkerSuffix):
			if err := r.renderFile(srcPath, destDir, entry); err != nil {
				return err
			}

		default:
			if err := r.copyFile(srcPath, destDir, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderFile(srcPath, destDir string, entry fs.DirEntry) error {
	content, err := fs.ReadFile(r.src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", srcPath, oerrors.ErrRead, err)
	}

	rendered, err := renderText(srcPath, string(content), r.vars)
	if err != nil {
		return err
	}

	outName := strings.TrimSuffix(entry.Name(), templates.MarkerSuffix)
	if err := writeNew(filepath.Join(destDir, outName), fileMode(entry), []byte(rendered)); err != nil {
		return err
	}

	rel := strings.TrimSuffix(srcPath, templates.MarkerSuffix)
	r.files = append(r.files, FileRecord{Path: rel, Rendered: true})
	output.Debug("rendered file", "path", rel)
	return nil
}

func (r *Renderer) copyFile(srcPath, destDir string, entry fs.DirEntry) error {
	content, err := fs.ReadFile(r.src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", srcPath, oerrors.ErrRead, err)
	}

	if err := writeNew(filepath.Join(destDir, entry.Name()), fileMode(entry), content); err != nil {
		return err
	}

	r.files = append(r.files, FileRecord{Path: srcPath})
	output.Debug("copied file", "path", srcPath)
	return nil
}

// writeNew creates destPath exclusively and writes content to it.
func writeNew(destPath string, mode fs.FileMode, content []byte) error {
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("creating file %s: %w: %w", destPath, oerrors.ErrWrite, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing file %s: %w: %w", destPath, oerrors.ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w: %w", destPath, oerrors.ErrWrite, err)
	}
	return nil
}

// fileMode keeps the executable bit of the source and nothing else.
func fileMode(entry fs.DirEntry) fs.FileMode {
	info, err := entry.Info()
	if err == nil && info.Mode().Perm()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}

// safeEntryName rejects names that could address anything outside the current directory.
func safeEntryName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
