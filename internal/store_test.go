package internal

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

func newTestStore(t *testing.T) (*Store, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	store := NewStore(fs, "src", DefaultCodec(), WithLog(t.Logf))
	return store, fs
}

func TestFetchAddsAssets(t *testing.T) {
	store, fs := newTestStore(t)

	if err := util.WriteFile(fs, "src/App.js", []byte("console.log('hi')"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := util.WriteFile(fs, "src/a/deep.ts", []byte("export {}"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := store.Fetch(); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if store.Collection().Len() != 2 {
		t.Fatalf("expected 2 assets, got %v", store.Collection().Paths())
	}
	if a, ok := store.Collection().Get("src/App.js"); !ok || a.Body != "console.log('hi')" {
		t.Errorf("src/App.js = %+v, %v", a, ok)
	}
}

func TestFetchMissingRootIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Fetch(); err != nil {
		t.Fatalf("fetch on missing root: %v", err)
	}
	if store.Collection().Len() != 0 {
		t.Errorf("expected empty collection, got %v", store.Collection().Paths())
	}
}

func TestFetchNeverRemoves(t *testing.T) {
	store, fs := newTestStore(t)
	store.AddOrUpdate("src/ghost.js", "only in memory")

	if err := util.WriteFile(fs, "src/App.js", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Fetch(); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.Collection().Get("src/ghost.js"); !ok {
		t.Error("fetch removed an asset not on disk")
	}
}

func TestPushWritesAndSkipsForeignPaths(t *testing.T) {
	store, fs := newTestStore(t)
	store.AddOrUpdate("src/App.js", "body")
	store.AddOrUpdate("elsewhere/out.js", "not under root")

	if err := store.Push(); err != nil {
		t.Fatalf("push: %v", err)
	}

	data, err := util.ReadFile(fs, "src/App.js")
	if err != nil || string(data) != "body" {
		t.Errorf("src/App.js on disk = %q, %v", data, err)
	}
	if _, err := fs.Stat("elsewhere/out.js"); !os.IsNotExist(err) {
		t.Errorf("foreign path was written: %v", err)
	}
}

func TestPushSuppressesIdenticalWrites(t *testing.T) {
	dir := t.TempDir()
	fs := osfs.New(dir)
	store := NewStore(fs, "src", DefaultCodec(), WithLog(t.Logf))

	store.AddOrUpdate("src/App.js", "stable")
	if err := store.Push(); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "src", "App.js")
	before, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	// Backdate so an unwanted rewrite is visible even on coarse clocks.
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(target, old, old); err != nil {
		t.Fatal(err)
	}
	before, _ = os.Stat(target)

	if err := store.Push(); err != nil {
		t.Fatal(err)
	}

	after, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("push rewrote an identical file")
	}

	store.AddOrUpdate("src/App.js", "changed")
	if err := store.Push(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(target)
	if string(data) != "changed" {
		t.Errorf("changed body not written: %q", data)
	}
}

func TestCleanDropsMissingFiles(t *testing.T) {
	store, fs := newTestStore(t)
	if err := util.WriteFile(fs, "src/keep.js", []byte("k"), 0644); err != nil {
		t.Fatal(err)
	}
	store.AddOrUpdate("src/keep.js", "k")
	store.AddOrUpdate("src/gone.js", "g")

	if err := store.Clean(); err != nil {
		t.Fatalf("clean: %v", err)
	}

	if got := store.Collection().Paths(); !reflect.DeepEqual(got, []string{"src/keep.js"}) {
		t.Errorf("paths after clean = %v", got)
	}
}

func TestPruneDeletesUntrackedFiles(t *testing.T) {
	store, fs := newTestStore(t)
	if err := util.WriteFile(fs, "src/tracked.js", []byte("t"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := util.WriteFile(fs, "src/stray.js", []byte("s"), 0644); err != nil {
		t.Fatal(err)
	}
	store.AddOrUpdate("src/tracked.js", "t")

	if err := store.Prune(); err != nil {
		t.Fatalf("prune: %v", err)
	}

	if _, err := fs.Stat("src/stray.js"); !os.IsNotExist(err) {
		t.Errorf("stray file survived prune: %v", err)
	}
	if _, err := fs.Stat("src/tracked.js"); err != nil {
		t.Errorf("tracked file deleted: %v", err)
	}
}

func TestRemoveAsset(t *testing.T) {
	store, _ := newTestStore(t)
	store.AddOrUpdate("src/A.js", "a")
	store.AddOrUpdate("src/B.js", "b")

	store.RemoveAsset("src/A.js")

	if got := store.Collection().Paths(); !reflect.DeepEqual(got, []string{"src/B.js"}) {
		t.Errorf("paths = %v", got)
	}
}

func TestCommitUndoRedo(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate("src/App.js", "console.log('hi')")
	store.Commit("first")

	store.AddOrUpdate("src/App.js", "console.log('bye')")
	store.Commit("second")

	if !store.Undo() {
		t.Fatal("undo returned false")
	}
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "console.log('hi')" {
		t.Errorf("after undo body = %q", a.Body)
	}

	if !store.Redo() {
		t.Fatal("redo returned false")
	}
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "console.log('bye')" {
		t.Errorf("after redo body = %q", a.Body)
	}
}

func TestUndoFloorAndRedoEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	if store.Undo() {
		t.Error("undo with no commits should be a no-op")
	}
	if store.Redo() {
		t.Error("redo with empty buffer should be a no-op")
	}

	store.AddOrUpdate("src/App.js", "a")
	store.Commit("only")

	if store.Undo() {
		t.Error("undo at the first commit should be a no-op")
	}
	if store.Head() != 0 {
		t.Errorf("head moved on no-op undo: %d", store.Head())
	}
}

func TestHistoryLinearity(t *testing.T) {
	store, _ := newTestStore(t)

	for i, body := range []string{"one", "two", "three"} {
		store.AddOrUpdate("src/App.js", body)
		store.Commit("c" + string(rune('1'+i)))
	}

	store.Undo()
	store.Undo()
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "one" {
		t.Fatalf("after two undos body = %q", a.Body)
	}

	store.Redo()
	store.Redo()
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "three" {
		t.Fatalf("after two redos body = %q", a.Body)
	}
}

func TestCommitAfterUndoDiscardsFuture(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate("src/App.js", "one")
	store.Commit("first")
	store.AddOrUpdate("src/App.js", "two")
	store.Commit("second")

	store.Undo()
	store.AddOrUpdate("src/App.js", "fork")
	store.Commit("forked")

	if store.Redo() {
		t.Error("redo after a superseding commit should be a no-op")
	}
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "fork" {
		t.Errorf("body = %q", a.Body)
	}
	if len(store.Log()) != 2 {
		t.Errorf("log = %+v", store.Log())
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate("src/App.js", "original")
	store.Commit("first")
	store.AddOrUpdate("src/App.js", "mutated")
	store.Commit("second")

	// Mutating the live collection after commit must not leak into history.
	store.AddOrUpdate("src/App.js", "live edit")

	store.Undo()
	if a, _ := store.Collection().Get("src/App.js"); a.Body != "original" {
		t.Errorf("snapshot was corrupted by live mutation: %q", a.Body)
	}
}

func TestLogMarksHead(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate("src/App.js", "a")
	store.Commit("first")
	store.AddOrUpdate("src/App.js", "b")
	store.Commit("second")
	store.Undo()

	log := store.Log()
	if len(log) != 2 {
		t.Fatalf("log length = %d", len(log))
	}
	if !log[0].Head || log[1].Head {
		t.Errorf("head flag wrong: %+v", log)
	}
	if log[0].Label != "first" || log[1].Label != "second" {
		t.Errorf("labels wrong: %+v", log)
	}
}

func TestFetchExtractsLeadingComment(t *testing.T) {
	store, fs := newTestStore(t)

	raw := "// src/App.js\nconsole.log('hi')"
	if err := util.WriteFile(fs, "src/App.js", []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Fetch(); err != nil {
		t.Fatal(err)
	}

	if a, _ := store.Collection().Get("src/App.js"); a.Body != "console.log('hi')" {
		t.Errorf("body = %q", a.Body)
	}
}
