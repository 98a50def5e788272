package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/filesystem"
)

const (
	workDirMode     = 0o755
	defaultRepoName = "repo"
	cloneDepth      = 1
)

// CloneFunc clones url into dest.
type CloneFunc func(ctx context.Context, dest, url string) error

// FetcherRepository materializes repositories inside the working directory:
// remote addresses are shallow-cloned, local directories are copied so the
// original checkout is never touched.
type FetcherRepository struct {
	fs    afero.Fs
	clone CloneFunc
}

// NewFetcherRepository creates a fetcher that clones with go-git and copies through fs.
func NewFetcherRepository(fs afero.Fs) repositories.FetcherRepository {
	return &FetcherRepository{fs: fs, clone: plainClone}
}

// NewFetcherRepositoryWithClone creates a fetcher with a custom clone function.
func NewFetcherRepositoryWithClone(fs afero.Fs, clone CloneFunc) *FetcherRepository {
	return &FetcherRepository{fs: fs, clone: clone}
}

// Fetch prepares cfg.WorkDir and returns the root of the materialized repository.
func (it *FetcherRepository) Fetch(ctx context.Context, cfg entities.RunConfiguration) (string, error) {
	workDir, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return "", fmt.Errorf("invalid work dir %q: %w", cfg.WorkDir, err)
	}

	if cfg.IsRemote() {
		if prepErr := it.prepare(workDir); prepErr != nil {
			return "", prepErr
		}
		dest := filepath.Join(workDir, RepoDirName(cfg.RepoAddress))
		logger.Infof("Cloning %s into %s", cfg.RepoAddress, dest)
		if cloneErr := it.clone(ctx, dest, cfg.RepoAddress); cloneErr != nil {
			return "", fmt.Errorf("failed to clone %s: %w", cfg.RepoAddress, cloneErr)
		}
		return dest, nil
	}

	source, err := it.resolveLocal(cfg.RepoAddress)
	if err != nil {
		return "", err
	}
	realSource := filesystem.ResolveSymlinks(it.fs, source)
	if isWithin(realSource, filesystem.ResolveSymlinks(it.fs, workDir)) {
		return "", fmt.Errorf("work dir %s must not contain the source repository %s", workDir, source)
	}
	if prepErr := it.prepare(workDir); prepErr != nil {
		return "", prepErr
	}

	dest := filepath.Join(workDir, RepoDirName(source))
	logger.Infof("Copying %s into %s", source, dest)
	if copyErr := it.copyTree(realSource, dest, filesystem.ResolveSymlinks(it.fs, workDir)); copyErr != nil {
		return "", fmt.Errorf("failed to copy %s: %w", source, copyErr)
	}
	return dest, nil
}

// resolveLocal expands "~" and checks that the source is an existing directory.
func (it *FetcherRepository) resolveLocal(address string) (string, error) {
	path := address
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", address, err)
	}

	info, statErr := it.fs.Stat(abs)
	if statErr != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: local path %s does not exist or is not a directory", entities.ErrNotFound, abs)
	}
	return abs, nil
}

// prepare empties the working directory. The filesystem root, the home
// directory and the current directory are refused.
func (it *FetcherRepository) prepare(workDir string) error {
	if unsafeErr := checkWorkDir(workDir); unsafeErr != nil {
		return unsafeErr
	}
	if err := it.fs.RemoveAll(workDir); err != nil {
		return fmt.Errorf("failed to clean work dir %s: %w", workDir, err)
	}
	if err := it.fs.MkdirAll(workDir, workDirMode); err != nil {
		return fmt.Errorf("failed to create work dir %s: %w", workDir, err)
	}
	return nil
}

func checkWorkDir(workDir string) error {
	refused := []string{string(filepath.Separator)}
	if cwd, err := os.Getwd(); err == nil {
		refused = append(refused, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		refused = append(refused, home)
	}

	for _, dir := range refused {
		if filepath.Clean(workDir) == filepath.Clean(dir) {
			return fmt.Errorf("refusing to use %s as work dir", workDir)
		}
	}
	return nil
}

// copyTree copies regular files and directories from src to dest, skipping
// the working directory when it lives inside src. Entries that cannot be
// read are skipped.
func (it *FetcherRepository) copyTree(src, dest, workDir string) error {
	return afero.Walk(it.fs, src, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil || info == nil {
			logger.Debugf("Skipping unreadable entry %s: %v", path, walkErr)
			return nil
		}
		if info.IsDir() && path != src && filepath.Clean(path) == workDir {
			return filepath.SkipDir
		}

		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return nil
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			return it.fs.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if copyErr := it.copyFile(path, target, info.Mode().Perm()); copyErr != nil {
			logger.Warnf("Skipping %s: %v", path, copyErr)
		}
		return nil
	})
}

func (it *FetcherRepository) copyFile(src, dest string, perm os.FileMode) (err error) {
	in, err := it.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := it.fs.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	_, err = io.Copy(out, in)
	return err
}

// RepoDirName derives the checkout directory name from a URL or a local path.
func RepoDirName(address string) string {
	trimmed := strings.TrimRight(address, "/\\")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if idx := strings.LastIndexAny(trimmed, "/\\:"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return defaultRepoName
	}
	return trimmed
}

func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func plainClone(ctx context.Context, dest, url string) error {
	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:          url,
		Depth:        cloneDepth,
		SingleBranch: true,
	})
	return err
}
