package iconpack

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/viewy-dev/viewy/internal/errors"
)

// CloneFunc clones a repository into dir.
type CloneFunc func(ctx context.Context, dir string, opts *git.CloneOptions) error

// PlainClone clones with go-git.
func PlainClone(ctx context.Context, dir string, opts *git.CloneOptions) error {
	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	return err
}

// Resolver finds the icon directory of a pack.
type Resolver struct {
	// Root is the project root local paths are relative to.
	Root string

	// CacheDir receives the icon directories of git packs, one
	// subdirectory per pack.
	CacheDir string

	// TempDir holds clones while they are copied. Empty means os.TempDir.
	TempDir string

	// Clone clones repositories. Nil means PlainClone.
	Clone CloneFunc
}

// cloneOptions returns a shallow, single-branch clone of the pack.
func cloneOptions(p Pack) *git.CloneOptions {
	return &git.CloneOptions{
		URL:           p.Git,
		ReferenceName: plumbing.NewBranchReferenceName(p.BranchName()),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
	}
}

// Resolve returns the directory holding the SVG files of p.
func (r *Resolver) Resolve(ctx context.Context, p Pack) (string, error) {
	if p.Git == "" {
		if p.Path == "" {
			return "", errors.New("E201").WithField("pack", p.Name)
		}
		dir := p.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(r.Root, dir)
		}
		if !isDir(dir) {
			return "", errors.New("E203").WithField("pack", p.Name).WithField("path", dir)
		}
		return dir, nil
	}

	tmp, err := os.MkdirTemp(r.TempDir, "viewy-icons-*")
	if err != nil {
		return "", errors.New("E202").WithField("pack", p.Name).Wrap(err)
	}
	defer os.RemoveAll(tmp)

	clone := r.Clone
	if clone == nil {
		clone = PlainClone
	}
	if err := clone(ctx, tmp, cloneOptions(p)); err != nil {
		return "", errors.New("E202").
			WithField("pack", p.Name).
			WithField("url", p.Git).
			WithField("branch", p.BranchName()).
			Wrap(err)
	}

	src := filepath.Join(tmp, p.Path)
	if !isDir(src) {
		return "", errors.New("E203").
			WithField("pack", p.Name).
			WithField("url", p.Git).
			WithField("path", p.Path)
	}

	dst := filepath.Join(r.CacheDir, p.Name)
	if err := os.RemoveAll(dst); err != nil {
		return "", errors.New("E208").WithField("pack", p.Name).Wrap(err)
	}
	if err := copyDir(src, dst); err != nil {
		return "", errors.New("E208").WithField("pack", p.Name).WithField("path", dst).Wrap(err)
	}
	return dst, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// copyDir copies the regular files and directories under src into dst.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if d.Name() == ".git" && path != src {
				return filepath.SkipDir
			}
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
