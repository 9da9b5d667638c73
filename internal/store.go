package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Snapshot is an immutable capture of the full collection at commit time.
// The contained collection is a deep copy; later mutation of the live
// collection cannot alter it.
type Snapshot struct {
	assets *Collection
	label  string
	when   time.Time
}

// CommitInfo is the log-facing view of a snapshot.
type CommitInfo struct {
	Index int
	Label string
	When  time.Time
	Head  bool
}

// Store owns the live asset collection, a linear snapshot history, and the
// four one-directional filesystem reconciliation operations. History is
// in-memory only; it does not survive process restart, and no sidecar
// metadata is written under root.
//
// The store is built for a single serial caller. Mutating operations take
// one coarse mutex for their duration.
type Store struct {
	mu sync.Mutex

	fs    billy.Filesystem
	root  string
	codec *Codec

	assets  *Collection
	commits []Snapshot
	head    int
	redo    []Snapshot

	log LogFunc
}

type StoreOption func(*Store)

func WithLog(log LogFunc) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func NewStore(fs billy.Filesystem, root string, codec *Codec, opts ...StoreOption) *Store {
	s := &Store{
		fs:     fs,
		root:   root,
		codec:  codec,
		assets: NewCollection(),
		head:   -1,
		log:    nopLog,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Root() string  { return s.root }
func (s *Store) Codec() *Codec { return s.codec }
func (s *Store) Head() int     { return s.head }

// Collection returns the live working copy. Mutation goes through the
// store; callers use this for queries and matching.
func (s *Store) Collection() *Collection {
	return s.assets
}

// AddOrUpdate is the sole content mutation entrypoint. The raw content is
// extract-normalized through the codec before insertion.
func (s *Store) AddOrUpdate(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.assets.AddOrUpdate(s.codec.NewAsset(path, content)) {
		s.log("updated asset: %s", path)
	} else {
		s.log("added asset: %s", path)
	}
}

func (s *Store) RemoveAsset(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.assets.Remove(path) {
		s.log("removed asset: %s", path)
	}
}

// Commit snapshots the current collection. Any previously undone future is
// discarded: commits are truncated to head+1 before appending, and the redo
// buffer is cleared.
func (s *Store) Commit(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{assets: s.assets.Clone(), label: label, when: time.Now()}
	s.commits = append(s.commits[:s.head+1], snap)
	s.head = len(s.commits) - 1
	s.redo = nil
	s.log("commit %d: %s", s.head, label)
}

// Undo moves head back one commit and restores the collection from it. A
// no-op (logged, not an error) when there is nothing before head.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.head <= 0 {
		s.log("nothing to undo")
		return false
	}
	s.redo = append(s.redo, s.commits[s.head])
	s.head--
	s.assets = s.commits[s.head].assets.Clone()
	s.log("undo: moved to commit %d", s.head)
	return true
}

// Redo re-applies the most recently undone commit. A no-op when the redo
// buffer is empty.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		s.log("nothing to redo")
		return false
	}
	snap := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.commits = append(s.commits, snap)
	s.head++
	s.assets = snap.assets.Clone()
	s.log("redo: moved to commit %d", s.head)
	return true
}

// Log returns the commit history oldest first, flagging the head entry.
func (s *Store) Log() []CommitInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CommitInfo, 0, len(s.commits))
	for i, c := range s.commits {
		out = append(out, CommitInfo{Index: i, Label: c.label, When: c.when, Head: i == s.head})
	}
	return out
}

// Fetch walks root and adds or updates an asset for every file found. It
// never removes assets missing from disk; that is Clean's job. A missing
// root is logged and treated as an empty result.
func (s *Store) Fetch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.fs.Stat(s.root); os.IsNotExist(err) {
		s.log("root directory %q does not exist", s.root)
		return nil
	}

	return util.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := util.ReadFile(s.fs, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if s.assets.AddOrUpdate(s.codec.NewAsset(path, string(data))) {
			s.log("updated asset: %s", path)
		} else {
			s.log("added asset: %s", path)
		}
		return nil
	})
}

// Push writes every asset under root to the filesystem, creating parent
// directories as needed. Writing is suppressed when the target already
// holds byte-identical content, so an unchanged asset never churns the
// file's mtime. Assets whose path is not under root are silently skipped.
//
// Writes are independent and idempotent: on failure the in-memory state is
// untouched and rerunning Push resumes safely by re-checking equality for
// every asset.
func (s *Store) Push() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := s.root + string(filepath.Separator)
	for _, a := range s.assets.Assets() {
		if a.Path != s.root && !strings.HasPrefix(a.Path, prefix) {
			continue
		}

		existing, err := util.ReadFile(s.fs, a.Path)
		if err == nil && string(existing) == a.Body {
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", a.Path, err)
		}

		if dir := filepath.Dir(a.Path); dir != "." {
			if err := s.fs.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(s.fs, a.Path, []byte(a.Body), 0644); err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		s.log("wrote file: %s", a.Path)
	}
	return nil
}

// Clean drops from memory every asset whose file no longer exists on disk:
// disk truth enforced onto memory after external deletions.
func (s *Store) Clean() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range s.assets.Paths() {
		_, err := s.fs.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		s.assets.Remove(path)
		s.log("purged asset: %s, missing from filesystem", path)
	}
	return nil
}

// Prune deletes every file under root that has no in-memory asset: memory
// truth enforced onto disk. Destructive; history does not protect files
// already written.
func (s *Store) Prune() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.fs.Stat(s.root); os.IsNotExist(err) {
		s.log("root directory %q does not exist", s.root)
		return nil
	}

	return util.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if _, ok := s.assets.Get(path); ok {
			return nil
		}
		if err := s.fs.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		s.log("deleted file: %s, not found in assets", path)
		return nil
	})
}
