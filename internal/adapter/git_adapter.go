package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	git "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"

	m "github.com/diffscope/fixturegen/internal/model"
)

// GitAdapter abstracts the repository operations the build and verify
// workflows rely on. Paths are corpus-relative; the adapter is bound to one
// repository root at Open time.
type GitAdapter interface {
	// Open binds the adapter to an existing repository at root.
	Open(root m.Path) error

	// OpenOrInit binds the adapter to the repository at root, initializing a
	// fresh one when none exists. Reports whether a repository was created.
	OpenOrInit(root m.Path) (created bool, err error)

	// IsClean reports whether the worktree has no pending changes.
	IsClean() (bool, error)

	// Add stages a written file.
	Add(rel m.Path) error

	// Move renames a tracked file in the worktree and stages the rename.
	Move(from, to m.Path) error

	// Remove deletes a tracked file from the worktree and stages the removal.
	Remove(rel m.Path) error

	// Commit records the staged changes and returns the new commit SHA.
	Commit(summary string) (string, error)

	// Reader returns an independent handle onto the same repository for use
	// from another goroutine.
	Reader() (GitAdapter, error)

	// HasCommit reports whether sha resolves to a commit in the repository.
	HasCommit(sha string) (bool, error)

	// FileAtCommit reports whether the corpus-relative path exists in the
	// tree of the given commit.
	FileAtCommit(sha string, rel m.Path) (bool, error)
}

// LocalGitAdapter drives a local repository through go-git.
type LocalGitAdapter struct {
	authorName  string
	authorEmail string

	root     m.Path
	repo     *git.Repository
	worktree *git.Worktree
}

// NewLocalGitAdapter constructs a LocalGitAdapter committing under the given
// author identity.
func NewLocalGitAdapter(authorName, authorEmail string) *LocalGitAdapter {
	return &LocalGitAdapter{
		authorName:  authorName,
		authorEmail: authorEmail,
	}
}

// Open binds the adapter to an existing repository at root.
func (a *LocalGitAdapter) Open(root m.Path) error {
	repo, err := git.PlainOpen(string(root))
	if err != nil {
		return fmt.Errorf("open repository %s: %w", root, err)
	}

	return a.bind(repo, root)
}

// OpenOrInit binds the adapter to the repository at root, initializing one
// when none exists yet. Mirrors the manual workflow's "check for an existing
// git repository, otherwise create it" step.
func (a *LocalGitAdapter) OpenOrInit(root m.Path) (bool, error) {
	repo, err := git.PlainOpen(string(root))
	if err == nil {
		return false, a.bind(repo, root)
	}

	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return false, fmt.Errorf("open repository %s: %w", root, err)
	}

	repo, err = git.PlainInit(string(root), false)
	if err != nil {
		return false, fmt.Errorf("init repository %s: %w", root, err)
	}

	slog.Info("initialized repository", "root", string(root))

	return true, a.bind(repo, root)
}

func (a *LocalGitAdapter) bind(repo *git.Repository, root m.Path) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree %s: %w", root, err)
	}

	a.root = root
	a.repo = repo
	a.worktree = worktree

	return nil
}

// Reader opens an independent handle onto the same repository. go-git does
// not document *git.Repository as safe for concurrent use, so callers fanning
// out reads give each goroutine its own handle.
func (a *LocalGitAdapter) Reader() (GitAdapter, error) {
	if a.repo == nil {
		return nil, errors.New("repository not opened")
	}

	reader := NewLocalGitAdapter(a.authorName, a.authorEmail)
	if err := reader.Open(a.root); err != nil {
		return nil, err
	}

	return reader, nil
}

// IsClean reports whether the worktree has no pending changes.
func (a *LocalGitAdapter) IsClean() (bool, error) {
	if a.worktree == nil {
		return false, errors.New("repository not opened")
	}

	status, err := a.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("worktree status: %w", err)
	}

	return status.IsClean(), nil
}

// Add stages a written file.
func (a *LocalGitAdapter) Add(rel m.Path) error {
	if a.worktree == nil {
		return errors.New("repository not opened")
	}

	if _, err := a.worktree.Add(string(rel)); err != nil {
		return fmt.Errorf("stage %s: %w", rel, err)
	}

	return nil
}

// Move renames a tracked file and stages the rename.
func (a *LocalGitAdapter) Move(from, to m.Path) error {
	if a.worktree == nil {
		return errors.New("repository not opened")
	}

	if _, err := a.worktree.Move(string(from), string(to)); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}

	return nil
}

// Remove deletes a tracked file and stages the removal.
func (a *LocalGitAdapter) Remove(rel m.Path) error {
	if a.worktree == nil {
		return errors.New("repository not opened")
	}

	if _, err := a.worktree.Remove(string(rel)); err != nil {
		return fmt.Errorf("remove %s: %w", rel, err)
	}

	return nil
}

// Commit records the staged changes and returns the new commit SHA.
func (a *LocalGitAdapter) Commit(summary string) (string, error) {
	if a.worktree == nil {
		return "", errors.New("repository not opened")
	}

	hash, err := a.worktree.Commit(summary, &git.CommitOptions{
		Author: &object.Signature{
			Name:  a.authorName,
			Email: a.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit %q: %w", summary, err)
	}

	slog.Debug("created commit", "sha", hash.String(), "summary", summary)

	return hash.String(), nil
}

// HasCommit reports whether sha resolves to a commit.
func (a *LocalGitAdapter) HasCommit(sha string) (bool, error) {
	if a.repo == nil {
		return false, errors.New("repository not opened")
	}

	if !plumbing.IsHash(sha) {
		return false, nil
	}

	_, err := a.repo.CommitObject(plumbing.NewHash(sha))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, plumbing.ErrObjectNotFound) {
		return false, nil
	}

	return false, fmt.Errorf("resolve commit %s: %w", sha, err)
}

// FileAtCommit reports whether rel exists in the tree of the given commit.
func (a *LocalGitAdapter) FileAtCommit(sha string, rel m.Path) (bool, error) {
	if a.repo == nil {
		return false, errors.New("repository not opened")
	}

	commit, err := a.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return false, fmt.Errorf("resolve commit %s: %w", sha, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return false, fmt.Errorf("tree of %s: %w", sha, err)
	}

	if _, err := tree.File(string(rel)); err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("lookup %s at %s: %w", rel, sha, err)
	}

	return true, nil
}
