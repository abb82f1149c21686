package site

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const dirPermissions = 0o755

// ErrOverlappingDirs is returned when the static and output directories
// are the same or one contains the other.
var ErrOverlappingDirs = errors.New("static and public directories overlap")

// CopyStatic replaces dst with a recursive copy of src.
func CopyStatic(src, dst string) error {
	if Overlapping(src, dst) {
		return fmt.Errorf("%w: %s and %s", ErrOverlappingDirs, src, dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat static directory %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static path %s is not a directory", src)
	}

	if _, err := os.Stat(dst); err == nil {
		log.Info().Str("path", dst).Msg("Clearing destination directory")
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("failed to clear %s: %w", dst, err)
		}
	}
	if err := os.MkdirAll(dst, dirPermissions); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	return copyTree(src, dst)
}

func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			log.Debug().Str("path", to).Msg("Creating directory")
			if err := os.Mkdir(to, dirPermissions); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", to, err)
			}
			if err := copyTree(from, to); err != nil {
				return err
			}
			continue
		}

		log.Debug().Str("from", from).Str("to", to).Msg("Copying file")
		if err := copyFile(from, to); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from) // #nosec G304 -- copying a user-provided static tree
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", from, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", from, err)
	}

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", to, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", from, to, err)
	}

	return out.Close()
}

// Overlapping reports whether a and b are the same directory or one is
// nested inside the other.
func Overlapping(a, b string) bool {
	return within(a, b) || within(b, a)
}

func within(parent, child string) bool {
	parent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	child, err = filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
