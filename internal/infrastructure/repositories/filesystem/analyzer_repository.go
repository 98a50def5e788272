package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	ignore "github.com/sabhiram/go-gitignore"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	licensePrefix    = "LICENSE"
	licenseReadLimit = 2000 // characters
)

// extensionLanguages maps lowercased file extensions to language labels.
var extensionLanguages = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".go":    "Go",
	".rs":    "Rust",
	".cpp":   "C++",
	".c":     "C",
	".cs":    "C#",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
}

// manifests are checked at the repository root only, in this order.
var manifests = []struct {
	file      string
	ecosystem string
}{
	{file: "requirements.txt", ecosystem: "python"},
	{file: "pyproject.toml", ecosystem: "python"},
	{file: "package.json", ecosystem: "node"},
	{file: "go.mod", ecosystem: "go"},
}

// licenseKeywords are tried in order against the lowercased license text.
var licenseKeywords = []struct {
	keyword string
	family  string
}{
	{keyword: "mit", family: "MIT"},
	{keyword: "apache", family: "Apache"},
	{keyword: "gpl", family: "GPL"},
}

var readmeFiles = []string{"README.md", "README.rst"}

var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

var (
	testFilePattern    = regexp.MustCompile(`^test_|_test\.`)
	pyprojectDescRegex = regexp.MustCompile(`description\s*=\s*"(.*?)"`)
)

type scannedFile struct {
	path string
	size int64
}

// AnalyzerRepository extracts repository metadata from a file tree using
// filename, extension and plain-text heuristics only.
type AnalyzerRepository struct {
	fs afero.Fs
}

// NewAnalyzerRepository creates an analyzer reading from fs.
func NewAnalyzerRepository(fs afero.Fs) repositories.AnalyzerRepository {
	return &AnalyzerRepository{fs: fs}
}

// Analyze walks root once and builds its metadata.
func (it *AnalyzerRepository) Analyze(
	root string,
	opts repositories.AnalyzerOptions,
) (entities.RepoMetadata, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return entities.RepoMetadata{}, fmt.Errorf("invalid path %q: %w", root, err)
	}

	info, statErr := it.fs.Stat(absRoot)
	if statErr != nil || !info.IsDir() {
		return entities.RepoMetadata{}, fmt.Errorf("%w: %s is not a directory", entities.ErrNotFound, absRoot)
	}

	// the walk starts from the resolved directory; Name keeps the given path
	walkRoot := ResolveSymlinks(it.fs, absRoot)

	topN := opts.TopFiles
	if topN <= 0 {
		topN = entities.DefaultTopFiles
	}

	var gitignore *ignore.GitIgnore
	if opts.RespectGitignore {
		gitignore = it.loadGitignore(walkRoot)
	}

	scan := it.walk(walkRoot, gitignore)

	metadata := entities.RepoMetadata{
		Name:         filepath.Base(absRoot),
		Description:  it.extractDescription(walkRoot),
		Languages:    scan.languages(),
		TopFiles:     scan.topFiles(topN),
		HasTests:     scan.hasTests,
		Dependencies: it.detectDependencies(walkRoot),
		License:      it.detectLicense(walkRoot),
		ReadmeExists: it.readmeExists(walkRoot),
		GoModule:     it.goModule(walkRoot),
	}
	return metadata, nil
}

// scanResult accumulates everything learned during the single traversal.
type scanResult struct {
	files         []scannedFile
	languageOrder []string
	languageCount map[string]int
	hasTests      bool
	totalBytes    int64
}

func (s *scanResult) languages() []entities.LanguageCount {
	result := make([]entities.LanguageCount, 0, len(s.languageOrder))
	for _, name := range s.languageOrder {
		result = append(result, entities.LanguageCount{Name: name, Count: s.languageCount[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func (s *scanResult) topFiles(n int) []string {
	files := make([]scannedFile, len(s.files))
	copy(files, s.files)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].size > files[j].size
	})
	if len(files) > n {
		files = files[:n]
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}
	return paths
}

// walk visits every regular file under root. Entries that cannot be read
// are skipped and the traversal carries on. Test detection is folded into
// this single walk, so it never stops early on the first match.
func (it *AnalyzerRepository) walk(root string, gitignore *ignore.GitIgnore) *scanResult {
	scan := &scanResult{languageCount: make(map[string]int)}

	_ = afero.Walk(it.fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil || info == nil {
			logger.Debugf("Skipping unreadable entry %s: %v", path, walkErr)
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := info.Name()

		if info.IsDir() {
			if _, skip := vcsDirs[name]; skip {
				return filepath.SkipDir
			}
			if gitignore != nil && gitignore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			if strings.HasPrefix(strings.ToLower(name), "test") {
				scan.hasTests = true
			}
			return nil
		}

		// symlinks, devices and sockets are not counted
		if !info.Mode().IsRegular() {
			return nil
		}
		if gitignore != nil && gitignore.MatchesPath(rel) {
			return nil
		}

		if testFilePattern.MatchString(name) {
			scan.hasTests = true
		}

		if lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(name))]; ok {
			if scan.languageCount[lang] == 0 {
				scan.languageOrder = append(scan.languageOrder, lang)
			}
			scan.languageCount[lang]++
		}

		scan.files = append(scan.files, scannedFile{path: rel, size: info.Size()})
		scan.totalBytes += info.Size()
		return nil
	})

	logger.Debugf(
		"Scanned %d files (%s) under %s",
		len(scan.files), humanize.Bytes(uint64(scan.totalBytes)), root, //nolint:gosec // sizes are never negative
	)
	return scan
}

func (it *AnalyzerRepository) loadGitignore(root string) *ignore.GitIgnore {
	data, err := afero.ReadFile(it.fs, filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}

func (it *AnalyzerRepository) detectDependencies(root string) []entities.ManifestGroup {
	var groups []entities.ManifestGroup
	index := make(map[string]int)

	for _, m := range manifests {
		if !it.isFile(filepath.Join(root, m.file)) {
			continue
		}
		i, ok := index[m.ecosystem]
		if !ok {
			i = len(groups)
			index[m.ecosystem] = i
			groups = append(groups, entities.ManifestGroup{Ecosystem: m.ecosystem})
		}
		groups[i].Files = append(groups[i].Files, m.file)
	}
	return groups
}

// detectLicense classifies the first root-level LICENSE* entry in lexical order.
func (it *AnalyzerRepository) detectLicense(root string) string {
	entries, err := afero.ReadDir(it.fs, root)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, licensePrefix) {
			continue
		}

		text, readErr := it.readHead(filepath.Join(root, name), licenseReadLimit)
		if readErr != nil {
			return name
		}
		text = strings.ToLower(text)
		for _, kw := range licenseKeywords {
			if strings.Contains(text, kw.keyword) {
				return kw.family
			}
		}
		return name
	}
	return ""
}

// readHead returns at most limit characters from the start of path.
// Invalid UTF-8 sequences are dropped.
func (it *AnalyzerRepository) readHead(path string, limit int) (string, error) {
	file, err := it.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(limit*utf8.UTFMax)))
	if err != nil {
		return "", err
	}

	text := strings.ToValidUTF8(string(data), "")
	if utf8.RuneCountInString(text) > limit {
		text = string([]rune(text)[:limit])
	}
	return text, nil
}

// extractDescription returns the first line of the first paragraph of the
// root README, or the pyproject.toml description.
func (it *AnalyzerRepository) extractDescription(root string) string {
	for _, readme := range readmeFiles {
		data, err := afero.ReadFile(it.fs, filepath.Join(root, readme))
		if err != nil {
			continue
		}
		text := strings.ReplaceAll(strings.ToValidUTF8(string(data), ""), "\r\n", "\n")
		for _, paragraph := range strings.Split(text, "\n\n") {
			trimmed := strings.TrimSpace(paragraph)
			if trimmed == "" {
				continue
			}
			firstLine, _, _ := strings.Cut(trimmed, "\n")
			return strings.TrimSpace(firstLine)
		}
	}

	data, err := afero.ReadFile(it.fs, filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return ""
	}
	if match := pyprojectDescRegex.FindSubmatch(data); match != nil {
		return string(match[1])
	}
	return ""
}

func (it *AnalyzerRepository) readmeExists(root string) bool {
	for _, readme := range readmeFiles {
		if exists, _ := afero.Exists(it.fs, filepath.Join(root, readme)); exists {
			return true
		}
	}
	return false
}

// goModule returns the module path declared in the root go.mod, or "".
func (it *AnalyzerRepository) goModule(root string) string {
	data, err := afero.ReadFile(it.fs, filepath.Join(root, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func (it *AnalyzerRepository) isFile(path string) bool {
	info, err := it.fs.Stat(path)
	return err == nil && !info.IsDir()
}
