// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidUTF8 is returned when a target file is not valid UTF-8 text
	ErrInvalidUTF8 = errors.Base("invalid utf-8")

	// ErrNoMatch is returned when a glob target matches no file
	ErrNoMatch = errors.Base("no file matches pattern")
)

// 📊 FileStatus represents what happened to a target file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // content changed and was written
	StatusUnchanged            // no rule matched, content written back as is
	StatusPreview              // dry run, nothing written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// 🔧 Options controls how the manager writes files
type Options struct {
	// InPlace truncates and rewrites the target directly instead of going
	// through a temporary file and a rename
	InPlace bool

	// Backup copies the target to <path>.bak before writing
	Backup bool
}

// 💾 Manager reads and writes target files relative to a base directory
type Manager struct {
	baseDir string
	logger  *zerolog.Logger
	opts    Options

	// writeFile performs in-place writes
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// 🏭 New creates a new file manager
func New(baseDir string, logger *zerolog.Logger, opts Options) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		logger:    logger,
		opts:      opts,
		writeFile: os.WriteFile,
	}
}

// BaseDir returns the directory every relative path is resolved against
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 AbsPath returns the absolute path for a given relative path
func (m *Manager) AbsPath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(m.baseDir, p)
}

// Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// 📖 ReadFile reads a whole target file and checks it is UTF-8 text.
func (m *Manager) ReadFile(ctx context.Context, p string) ([]byte, error) {
	absPath := m.AbsPath(p)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("reading %s: %w", p, ErrInvalidUTF8)
	}

	m.logger.Debug().
		Str("path", absPath).
		Int("size", len(content)).
		Str("checksum", Checksum(content)).
		Msg("read file")

	return content, nil
}

// ✍️ WriteFile overwrites the target with content, keeping its permissions.
func (m *Manager) WriteFile(ctx context.Context, p string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	if m.opts.Backup {
		if err := m.BackupFile(ctx, p); err != nil {
			return err
		}
	}

	var err error
	if m.opts.InPlace {
		err = m.writeInPlace(ctx, p, content)
	} else {
		err = m.WriteFileAtomic(ctx, p, content)
	}
	if err == nil || !m.opts.Backup {
		return err
	}

	// a failed in-place write may have truncated the target
	if restoreErr := m.RestoreFile(ctx, p); restoreErr != nil {
		m.logger.Error().Err(restoreErr).Str("path", m.AbsPath(p)).Msg("restoring backup after failed write")
		return errors.Errorf("%w (restore failed: %v)", err, restoreErr)
	}
	m.logger.Warn().Str("path", m.AbsPath(p)).Msg("write failed, backup restored")
	return err
}

// WriteFileAtomic writes to a temporary file next to the target and renames it over the target.
func (m *Manager) WriteFileAtomic(ctx context.Context, p string, content []byte) error {
	absPath := m.AbsPath(p)

	// write through symlinks like an in-place write would
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}
	mode := m.fileMode(absPath)

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	m.logger.Debug().Str("path", absPath).Int("size", len(content)).Msg("wrote file atomically")
	return nil
}

func (m *Manager) writeInPlace(ctx context.Context, p string, content []byte) error {
	absPath := m.AbsPath(p)
	if err := m.writeFile(absPath, content, m.fileMode(absPath)); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	m.logger.Debug().Str("path", absPath).Int("size", len(content)).Msg("wrote file in place")
	return nil
}

// fileMode returns the permissions of an existing file, 0644 otherwise
func (m *Manager) fileMode(absPath string) os.FileMode {
	info, err := os.Stat(absPath)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}

// FileExists reports whether the target exists.
func (m *Manager) FileExists(ctx context.Context, p string) (bool, error) {
	_, err := os.Stat(m.AbsPath(p))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// BackupFile copies the target to <path>.bak. A missing target is not an error.
func (m *Manager) BackupFile(ctx context.Context, p string) error {
	exists, err := m.FileExists(ctx, p)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	absPath := m.AbsPath(p)
	backupPath := absPath + ".bak"
	if err := copyFile(absPath, backupPath, m.fileMode(absPath)); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	m.logger.Debug().Str("path", absPath).Str("backup", backupPath).Msg("backed up file")
	return nil
}

// RestoreFile puts <path>.bak back in place and removes the backup.
func (m *Manager) RestoreFile(ctx context.Context, p string) error {
	exists, err := m.FileExists(ctx, p+".bak")
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("backup file does not exist")
	}

	absPath := m.AbsPath(p)
	backupPath := absPath + ".bak"
	if err := copyFile(backupPath, absPath, m.fileMode(backupPath)); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

// 🔍 Resolve expands a target into the files it designates. A plain path is
// returned untouched so a missing file surfaces as a read error; a doublestar
// pattern must match at least one regular file.
func (m *Manager) Resolve(ctx context.Context, pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) || !hasMeta(pattern) {
		return []string{pattern}, nil
	}

	clean := path.Clean(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(clean) {
		return nil, errors.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(m.baseDir), clean, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("matching %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("%s in %s: %w", pattern, m.baseDir, ErrNoMatch)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if !fs.ValidPath(match) {
			continue
		}
		files = append(files, filepath.FromSlash(match))
	}

	m.logger.Debug().Str("pattern", pattern).Strs("files", files).Msg("resolved target")
	return files, nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// copyFile copies src to dst and gives dst the mode perm, even when dst
// already exists.
func copyFile(src, dst string, perm os.FileMode) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return errors.Errorf("copying file: %w", err)
	}
	if err := destination.Chmod(perm); err != nil {
		destination.Close()
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := destination.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	return nil
}
