package artifact

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2/storage"
	"github.com/google/uuid"

	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
)

// Store constants
const (
	StoreDirPattern = "video-converter-artifacts-*"
)

var (
	// ErrRevoked is returned for artifacts that were revoked or never stored here
	ErrRevoked = errors.New("artifact revoked")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("artifact store closed")
)

// Store owns the files behind live artifacts
type Store struct {
	mu     sync.Mutex
	dir    string
	live   map[string]string // artifact path -> entry directory
	closed bool
}

// NewStore creates a store with its own temporary directory under root.
// An empty root uses the system temp directory.
func NewStore(root string) (*Store, error) {
	dir, err := os.MkdirTemp(root, StoreDirPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact dir: %w", err)
	}
	return &Store{
		dir:  dir,
		live: make(map[string]string),
	}, nil
}

// Dir returns the directory holding the artifact files
func (s *Store) Dir() string {
	return s.dir
}

// Create writes data to a new artifact named name
func (s *Store) Create(name string, format model.Format, data []byte) (*model.OutputArtifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	// One directory per artifact so the file keeps its suggested name
	entryDir := filepath.Join(s.dir, uuid.NewString())
	if err := os.Mkdir(entryDir, platform.DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create artifact entry: %w", err)
	}

	path := filepath.Join(entryDir, filepath.Base(name))
	if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
		os.RemoveAll(entryDir)
		return nil, fmt.Errorf("failed to write artifact %s: %w", name, err)
	}

	s.live[path] = entryDir

	return &model.OutputArtifact{
		Name:     filepath.Base(name),
		Format:   format,
		MIMEType: format.MIMEType(),
		URL:      storage.NewFileURI(path).String(),
		Path:     path,
		Size:     int64(len(data)),
	}, nil
}

// Revoke releases the artifact file. Revoking nil or an already revoked
// artifact is a no-op.
func (s *Store) Revoke(a *model.OutputArtifact) error {
	if a == nil {
		return nil
	}

	s.mu.Lock()
	entryDir, ok := s.live[a.Path]
	delete(s.live, a.Path)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	if err := os.RemoveAll(entryDir); err != nil {
		return fmt.Errorf("failed to revoke artifact %s: %w", a.Name, err)
	}
	log.Printf("Artifact revoked: %s", a.Name)
	return nil
}

// Live reports whether a has not been revoked
func (s *Store) Live(a *model.OutputArtifact) bool {
	if a == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[a.Path]
	return ok
}

// CopyTo streams the artifact contents to w
func (s *Store) CopyTo(a *model.OutputArtifact, w io.Writer) (int64, error) {
	if !s.Live(a) {
		return 0, ErrRevoked
	}

	f, err := os.Open(a.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to open artifact %s: %w", a.Name, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("failed to copy artifact %s: %w", a.Name, err)
	}
	return n, nil
}

// SaveToDir copies the artifact into dir under its suggested name, never
// overwriting an existing file. It returns the path written.
func (s *Store) SaveToDir(a *model.OutputArtifact, dir string) (string, error) {
	if !s.Live(a) {
		return "", ErrRevoked
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	target, err := platform.UniquePath(dir, a.Name)
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, platform.DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := s.CopyTo(a, out); err != nil {
		out.Close()
		os.Remove(target)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close %s: %w", target, err)
	}

	log.Printf("Artifact saved: %s", target)
	return target, nil
}

// Close revokes every live artifact and removes the store directory
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.live = make(map[string]string)
	return os.RemoveAll(s.dir)
}
