// Package git lays out the on-disk structure of a fresh repository.
//
// Core types:
//   - Repository: Resolves repository-relative names under the .git control
//     directory and creates directories and files there
//   - Initializer: Creates the standard directories and seed files
//
// Existence probes (File, Dir) report absence with a boolean because a
// missing path is expected while a repository is being built. Mutations
// (Mkdir, WriteFile) return errors annotated with the operation and path.
//
// Example usage:
//
//	repo, err := git.Init("/path/to/project")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(repo.GitDir()) // /path/to/project/.git
//
//	// Customize the seed files
//	repo, err = git.Initializer{DefaultBranch: "trunk"}.Create("/path/to/other")
package git
