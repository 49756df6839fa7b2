package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrUnreadable is returned by ReadContent for files added with AddUnreadableFile.
var ErrUnreadable = errors.New("permission denied")

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File for in-memory entries
type memoryFile struct {
	absPath    string
	relPath    string
	content    []byte
	unreadable bool
	info       *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.unreadable {
		return nil, fmt.Errorf("open %s: %w", f.absPath, ErrUnreadable)
	}
	return f.content, nil
}

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	// Lexical order per directory level, matching filepath.Walk
	sort.Slice(entries, func(i, j int) bool {
		return walkLess(entries[i].absPath, entries[j].absPath)
	})

	for _, entry := range entries {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(entry, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// walkLess orders paths segment by segment, so "a/b.php" sorts before "a.php".
func walkLess(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes regardless of platform.
type MemoryFileSystem struct {
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root, ".")
	return mfs
}

// AddFile adds a file to the in-memory filesystem.
// Relative paths are resolved against the root; parent directories are created.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.addFile(filePath, []byte(content), false)
}

// AddUnreadableFile adds a file whose ReadContent always fails.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string) {
	mfs.addFile(filePath, nil, true)
}

func (mfs *MemoryFileSystem) addFile(filePath string, content []byte, unreadable bool) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath:    absPath,
		relPath:    mfs.relative(absPath),
		content:    content,
		unreadable: unreadable,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureParents(absPath)
}

// resolve converts p into a clean absolute path inside the virtual filesystem.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	if mfs.root == "/" {
		return strings.TrimPrefix(absPath, "/")
	}
	return strings.TrimPrefix(absPath, mfs.root+"/")
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// ensureParents creates directory entries for all ancestors of p up to the root.
func (mfs *MemoryFileSystem) ensureParents(p string) {
	for dir := path.Dir(p); dir != p && dir != "/" && dir != "."; p, dir = dir, path.Dir(dir) {
		if _, exists := mfs.files[dir]; exists {
			return
		}
		mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))
	}
}

// entriesUnder returns basePath itself and every entry below it.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
