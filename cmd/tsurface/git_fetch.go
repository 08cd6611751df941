package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// fetchGitSource clones a repository into the checkout cache and returns
// the directory holding the requested revision. Checkouts pinned to a
// full commit hash are reused; mutable refs are fetched fresh each time.
func fetchGitSource(url, rev string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", fmt.Errorf("git scan requires a repository URL")
	}
	rev = strings.TrimSpace(rev)

	cacheRoot, err := checkoutCacheDir()
	if err != nil {
		return "", err
	}
	baseDir := filepath.Join(cacheRoot, "src", repoSlug(url))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", err
	}

	if rev != "" {
		existing := filepath.Join(baseDir, sanitizePathSegment(rev))
		if info, err := os.Stat(existing); err == nil && info.IsDir() {
			return existing, nil
		}
	}

	revision := plumbing.Revision(rev)
	if rev == "" {
		revision = plumbing.Revision("HEAD")
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 0,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}

	targetDir := filepath.Join(baseDir, sanitizePathSegment(pinnedVersion(rev, hash.String())))
	if info, err := os.Stat(targetDir); err == nil && info.IsDir() {
		_ = os.RemoveAll(tmpDir)
		return targetDir, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	return targetDir, nil
}

// pinnedVersion names a checkout directory. A rev that already equals the
// resolved commit collapses to the commit alone.
func pinnedVersion(rev, commit string) string {
	commit = strings.TrimSpace(commit)
	rev = strings.TrimSpace(rev)
	if commit == "" {
		return rev
	}
	if rev == "" || rev == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", rev, commit)
}

// repoSlug derives a cache directory name from a repository URL.
func repoSlug(url string) string {
	slug := strings.TrimSpace(url)
	for _, prefix := range []string{"https://", "http://", "git://", "ssh://"} {
		slug = strings.TrimPrefix(slug, prefix)
	}
	slug = strings.TrimPrefix(slug, "git@")
	slug = strings.TrimSuffix(slug, ".git")
	slug = strings.ReplaceAll(slug, ":", "/")
	slug = strings.Trim(slug, "/")
	return sanitizePathSegment(slug)
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	result := b.String()
	if result == "" {
		return "head"
	}
	return result
}
