package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// AudioExtension is the only input format accepted for transcription.
const AudioExtension = ".mp3"

// IsAudioFile reports whether path carries the accepted audio extension,
// matched case-insensitively.
func IsAudioFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), AudioExtension)
}

// Discover resolves a target into an ordered list of audio file paths.
//
// An empty target falls back to defaultDir. A target naming a single audio
// file yields that file alone. A directory target yields its direct audio
// entries (non-recursive), sorted case-insensitively by file name. A target
// that is neither an existing file nor a directory, or a directory with no
// audio entries, yields an empty list; "no work found" is not an error.
func Discover(target, defaultDir string) ([]string, error) {
	if target == "" {
		target = defaultDir
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, nil
	}

	if !info.IsDir() {
		if IsAudioFile(target) {
			return []string{target}, nil
		}
		return nil, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, err
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), !entry.IsDir() && IsAudioFile(entry.Name())
	})

	// Case-folding filesystems can surface the same entry under more than one
	// case variant; keep the first occurrence only.
	names = lo.UniqBy(names, strings.ToLower)

	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	return lo.Map(names, func(name string, _ int) string {
		return filepath.Join(target, name)
	}), nil
}

// EnsureDir creates dir and any missing parents. Existing directories are
// left untouched.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, os.ModePerm)
}

// ExecutableDir returns the directory holding the running binary; the default
// input/output folders are resolved relative to it. Falls back to the working
// directory when the executable path cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, wdErr := os.Getwd(); wdErr == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(exe)
}
