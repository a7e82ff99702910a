package git

import (
	"bytes"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Seed file defaults.
const (
	// DefaultBranch is the branch HEAD points at in a fresh repository.
	DefaultBranch = "main"

	// DefaultDescription is written to the description file, followed by a newline.
	DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository."
)

// standardDirs are created under the control directory, in order.
var standardDirs = []string{
	"branches",
	"objects",
	path.Join("refs", "heads"),
	path.Join("refs", "tags"),
}

// Initializer creates the on-disk layout of a fresh repository.
// The zero value writes the default seed files on the OS filesystem.
type Initializer struct {
	// DefaultBranch is the branch HEAD refers to. Defaults to "main".
	DefaultBranch string

	// Description is the first line of the description file.
	// Defaults to DefaultDescription.
	Description string

	// Logger receives progress records. Defaults to slog.Default().
	Logger *slog.Logger

	// Filesystem returns the filesystem rooted at the working tree.
	// If nil, the OS filesystem is used.
	Filesystem func(root string) billy.Filesystem

	// BoundOS makes Create fail with ErrPathEscape when a symlink under
	// the control directory is absolute, dangling or leaves the working
	// tree. Ignored when Filesystem is set.
	BoundOS bool
}

// Init initializes a repository at root with the default settings.
func Init(root string) (*Repository, error) {
	return Initializer{}.Create(root)
}

// Create initializes a repository at root and returns it.
//
// The working tree and the standard directories are created if missing,
// and the description, HEAD and config files are (re)written. Create does
// not roll back on failure; running it again repairs a partial layout.
func (in Initializer) Create(root string) (*Repository, error) {
	branch := in.branch()
	if err := ValidateBranchName(branch); err != nil {
		return nil, err
	}

	repo := NewRepository(root, in.options(root)...)
	logger := repo.logger.With(slog.String("worktree", root))

	if err := repo.checkTarget(); err != nil {
		return nil, err
	}
	if err := repo.mkdirWorktree(); err != nil {
		return nil, err
	}

	for _, dir := range standardDirs {
		if err := repo.Mkdir(dir); err != nil {
			return nil, err
		}
	}

	if err := repo.WriteFile("description", []byte(in.description()+"\n")); err != nil {
		return nil, err
	}
	if err := repo.WriteFile("HEAD", []byte(HeadRef(branch))); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodeConfig(&buf, DefaultConfig()); err != nil {
		return nil, &Error{Op: "encode config", Path: repo.Path("config"), Err: err}
	}
	if err := repo.WriteFile("config", buf.Bytes()); err != nil {
		return nil, err
	}

	logger.Info("initialized repository",
		slog.String("gitdir", repo.GitDir()),
		slog.String("branch", branch))

	return repo, nil
}

// HeadRef returns the contents of a HEAD file pointing at branch.
func HeadRef(branch string) string {
	return "ref: refs/heads/" + branch + "\n"
}

// ValidateBranchName rejects names that cannot be used as a ref under
// refs/heads, following git's ref format rules.
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBranchName)
	}
	// git check-ref-format --branch also refuses a leading dash.
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w %q", ErrInvalidBranchName, name)
	}
	if err := plumbing.NewBranchReferenceName(name).Validate(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidBranchName, name, err)
	}
	return nil
}

func (in Initializer) branch() string {
	if in.DefaultBranch != "" {
		return in.DefaultBranch
	}
	return DefaultBranch
}

func (in Initializer) description() string {
	desc := strings.TrimRight(in.Description, "\n")
	if desc == "" {
		return DefaultDescription
	}
	return desc
}

func (in Initializer) options(root string) []Option {
	var opts []Option
	if in.Logger != nil {
		opts = append(opts, WithLogger(in.Logger))
	}
	switch {
	case in.Filesystem != nil:
		opts = append(opts, WithFilesystem(in.Filesystem(root)))
	case in.BoundOS:
		opts = append(opts, WithBoundOS())
	}
	return opts
}
