package osfilesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "a", "b", "c")
	if err := fs.MkdirAll(testPath); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}

	// Existing directories are not an error
	if err := fs.MkdirAll(testPath); err != nil {
		t.Errorf("MkdirAll on existing dir failed: %v", err)
	}
}

func TestFileSystem_MkdirAllPathConflict(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "rendered_videos")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := fs.MkdirAll(file); err == nil {
		t.Error("expected error when a file occupies the directory path")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = fs.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_ReadDir(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	os.Mkdir(filepath.Join(tmpDir, "render_b"), 0755)
	os.Mkdir(filepath.Join(tmpDir, "render_a"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "render_file"), []byte("x"), 0644)

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Entries come back in filename order
	if entries[0].Name != "render_a" || !entries[0].IsDir {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "render_b" || !entries[1].IsDir {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].Name != "render_file" || entries[2].IsDir {
		t.Errorf("unexpected third entry: %+v", entries[2])
	}
}

func TestFileSystem_ReadDirFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	fs := New()
	tmpDir := t.TempDir()
	target := t.TempDir()

	if err := os.Symlink(target, filepath.Join(tmpDir, "render_link")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir {
		t.Errorf("expected symlink to a directory to be reported as a directory, got %+v", entries)
	}
}

func TestFileSystem_ReadDirMissing(t *testing.T) {
	fs := New()

	if _, err := fs.ReadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileSystem_Times(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "render_1")
	os.Mkdir(dir, 0755)

	mtime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(dir, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	times, err := fs.Times(dir)
	if err != nil {
		t.Fatalf("Times failed: %v", err)
	}
	if !times.Modified.Equal(mtime) {
		t.Errorf("expected modified %v, got %v", mtime, times.Modified)
	}

	ts, ok := times.Preferred()
	if !ok {
		t.Fatal("expected a usable timestamp")
	}
	if times.Created.IsZero() && !ts.Equal(mtime) {
		t.Errorf("expected fallback to modification time, got %v", ts)
	}
}

func TestFileSystem_TimesMissing(t *testing.T) {
	fs := New()

	if _, err := fs.Times(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestFileSystem_Size(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "out.mp4")
	os.WriteFile(path, []byte("12345"), 0644)

	size, err := fs.Size(path)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 5 {
		t.Errorf("expected 5 bytes, got %d", size)
	}
}

func TestFileSystem_RemoveAll(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "render_1")
	os.MkdirAll(filepath.Join(dir, "nested"), 0755)
	os.WriteFile(filepath.Join(dir, "frame_00000.png"), []byte("png"), 0644)

	if err := fs.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}

	exists, _ := fs.Exists(dir)
	if exists {
		t.Error("expected directory tree to be removed")
	}
}
