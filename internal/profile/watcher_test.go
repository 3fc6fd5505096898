package profile_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dshills/cyclekeys/internal/profile"
)

func waitForCount(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("callback count %d never reached %d", counter.Load(), want)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.xml")
	if err := os.WriteFile(path, []byte("<profile/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	var count atomic.Int32
	w, err := profile.Watch(path, func() { count.Add(1) }, profile.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("<profile version=\"1\"/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitForCount(t, &count, 1)
}

func TestWatchSeesAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.xml")
	if err := os.WriteFile(path, []byte("<profile/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	var count atomic.Int32
	w, err := profile.Watch(path, func() { count.Add(1) }, profile.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("<profile version=\"1\"/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	waitForCount(t, &count, 1)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.xml")
	if err := os.WriteFile(path, []byte("<profile/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	var count atomic.Int32
	w, err := profile.Watch(path, func() { count.Add(1) }, profile.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.xml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)
	if count.Load() != 0 {
		t.Errorf("callback fired %d times for an unrelated file", count.Load())
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.xml")
	if err := os.WriteFile(path, []byte("<profile/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := profile.Watch(path, func() {})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestWatchNilCallback(t *testing.T) {
	if _, err := profile.Watch("anywhere.xml", nil); err == nil {
		t.Error("expected error for nil callback")
	}
}
