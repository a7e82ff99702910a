package git

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// GitDirName is the name of the control directory inside the working tree.
const GitDirName = ".git"

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644

	tempAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tempIDLength = 10
)

// Repository resolves repository-relative names against the control
// directory of a working tree.
type Repository struct {
	worktree string           // Working tree root as given by the caller
	gitdir   string           // worktree joined with GitDirName
	fs       billy.Filesystem // Filesystem rooted at worktree
	bound    bool             // Refuse symlinks that leave worktree
	logger   *slog.Logger
}

// Option configures Repository.
type Option func(*Repository)

// WithFilesystem sets the filesystem the repository operates on.
// The filesystem must be rooted at the working tree.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(r *Repository) {
		r.fs = fsys
	}
}

// WithLogger sets the logger used for filesystem mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithBoundOS roots the repository on the bound OS filesystem and makes
// Mkdir and WriteFile fail with ErrPathEscape when a symlink along the
// target path resolves outside the working tree.
func WithBoundOS() Option {
	return func(r *Repository) {
		r.fs = osfs.New(r.worktree, osfs.WithBoundOS())
		r.bound = true
	}
}

// NewRepository creates a Repository for the working tree at root.
// It does not touch the filesystem.
func NewRepository(root string, opts ...Option) *Repository {
	r := &Repository{
		worktree: root,
		gitdir:   filepath.Join(root, GitDirName),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.fs == nil {
		r.fs = osfs.New(root)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Worktree returns the working tree root.
func (r *Repository) Worktree() string {
	return r.worktree
}

// GitDir returns the control directory path.
func (r *Repository) GitDir() string {
	return r.gitdir
}

// Path returns the control directory joined with rel.
// Callers pass repository-internal names such as "HEAD" or "refs/heads".
func (r *Repository) Path(rel string) string {
	return filepath.Join(r.gitdir, rel)
}

// File returns the path for rel if its parent directory exists.
// It reports false when the parent is missing, which is an expected state
// before the surrounding directories have been created.
func (r *Repository) File(rel string) (string, bool) {
	name, err := r.resolve(rel)
	if err != nil {
		return "", false
	}
	if !r.isDir(filepath.Dir(name)) {
		return "", false
	}
	return r.Path(rel), true
}

// Dir returns the path for rel if it exists and is a directory.
func (r *Repository) Dir(rel string) (string, bool) {
	name, err := r.resolve(rel)
	if err != nil {
		return "", false
	}
	if !r.isDir(name) {
		return "", false
	}
	return r.Path(rel), true
}

// Mkdir creates the directory rel and any missing parents.
// It succeeds if the directory already exists.
func (r *Repository) Mkdir(rel string) error {
	path := r.Path(rel)

	name, err := r.resolve(rel)
	if err != nil {
		return &Error{Op: "mkdir", Path: path, Err: err}
	}
	if err := r.checkContained(name); err != nil {
		return &Error{Op: "mkdir", Path: path, Err: err}
	}
	if err := r.fs.MkdirAll(name, dirPerm); err != nil {
		return &Error{Op: "mkdir", Path: path, Err: err}
	}

	r.logger.Debug("created directory", slog.String("path", path))
	return nil
}

// WriteFile replaces the contents of rel with data.
// The parent directory must already exist; otherwise the returned error
// wraps ErrPathNotReady.
func (r *Repository) WriteFile(rel string, data []byte) error {
	path := r.Path(rel)

	name, err := r.resolve(rel)
	if err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	if err := r.checkContained(name); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	if _, ok := r.File(rel); !ok {
		return &Error{Op: "write", Path: path, Err: ErrPathNotReady}
	}

	id, err := nanoid.Generate(tempAlphabet, tempIDLength)
	if err != nil {
		return &Error{Op: "write", Path: path, Err: fmt.Errorf("generate temp name: %w", err)}
	}

	// Write beside the target and rename so readers never see a partial file.
	tmp := filepath.Join(filepath.Dir(name), "."+filepath.Base(name)+"-"+id+".tmp")
	if err := r.writeTemp(tmp, data); err != nil {
		_ = r.fs.Remove(tmp)
		return &Error{Op: "write", Path: path, Err: err}
	}
	if err := r.fs.Rename(tmp, name); err != nil {
		_ = r.fs.Remove(tmp)
		return &Error{Op: "write", Path: path, Err: err}
	}

	r.logger.Debug("wrote file", slog.String("path", path), slog.Int("bytes", len(data)))
	return nil
}

// ReadFile returns the contents of rel.
func (r *Repository) ReadFile(rel string) ([]byte, error) {
	path := r.Path(rel)

	name, err := r.resolve(rel)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}

	f, err := r.fs.Open(name)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// checkTarget fails with ErrInvalidTarget when the working tree root
// exists as something other than a directory.
func (r *Repository) checkTarget() error {
	info, err := r.fs.Stat(".")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &Error{Op: "stat", Path: r.worktree, Err: err}
	}
	if !info.IsDir() {
		return &Error{Op: "init", Path: r.worktree, Err: ErrInvalidTarget}
	}
	return nil
}

// mkdirWorktree creates the working tree root itself.
func (r *Repository) mkdirWorktree() error {
	if err := r.fs.MkdirAll(".", dirPerm); err != nil {
		return &Error{Op: "mkdir", Path: r.worktree, Err: err}
	}
	return nil
}

func (r *Repository) writeTemp(name string, data []byte) error {
	f, err := r.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Repository) isDir(name string) bool {
	info, err := r.fs.Stat(name)
	return err == nil && info.IsDir()
}

// resolve maps rel to a name on r.fs, which is rooted at the working tree.
// Joining cleans the result component by component, collapsing "." and
// redundant separators and resolving ".." against what precedes it. A name
// that climbs out of the control directory is rejected.
func (r *Repository) resolve(rel string) (string, error) {
	name := filepath.Join(GitDirName, rel)
	if name != GitDirName && !strings.HasPrefix(name, GitDirName+string(filepath.Separator)) {
		return "", ErrPathEscape
	}
	return name, nil
}

// checkContained walks name from the working tree down and fails with
// ErrPathEscape if an existing component is a symlink that is absolute,
// dangling, or resolves outside the working tree. It only applies to
// bound repositories; the walk stops at the first missing component.
func (r *Repository) checkContained(name string) error {
	if !r.bound {
		return nil
	}

	root, err := filepath.Abs(r.worktree)
	if err != nil {
		return err
	}
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}

	cur := root
	for _, part := range strings.Split(name, string(filepath.Separator)) {
		cur = filepath.Join(cur, part)

		info, err := os.Lstat(cur)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			continue
		}

		// The bound filesystem re-roots absolute targets under the working
		// tree, so they never point where the link says.
		link, err := os.Readlink(cur)
		if err != nil {
			return err
		}
		if filepath.IsAbs(link) {
			return fmt.Errorf("%w: %s links to absolute path %s", ErrPathEscape, cur, link)
		}

		target, err := filepath.EvalSymlinks(cur)
		if err != nil {
			return fmt.Errorf("%w: %s is a dangling symlink", ErrPathEscape, cur)
		}
		if !within(realRoot, target) {
			return fmt.Errorf("%w: %s resolves to %s", ErrPathEscape, cur, target)
		}
	}
	return nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
