package catalog

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestStorePutAndLookup(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	rec := Record{
		SourcePath:      "/packages/CookedPC/Startup.upk",
		OutputPath:      "/packages/CookedPC/Startup_decrypted.upk",
		InputSize:       1 << 20,
		FileVersion:     648,
		LicenseeVersion: 22,
		FolderName:      "None",
		ChunkCount:      14,
		InputDigest:     bytes.Repeat([]byte{0xAB}, 32),
		OutputDigest:    bytes.Repeat([]byte{0xCD}, 32),
		ConvertedAt:     time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.BySource(ctx, rec.SourcePath)
	if err != nil {
		t.Fatalf("BySource: %v", err)
	}
	if got.OutputPath != rec.OutputPath || got.ChunkCount != 14 || got.LicenseeVersion != 22 {
		t.Fatalf("BySource: got %+v", got)
	}
	if !bytes.Equal(got.InputDigest, rec.InputDigest) {
		t.Fatalf("input digest lost")
	}
	if !got.ConvertedAt.Equal(rec.ConvertedAt) {
		t.Fatalf("ConvertedAt: got %v", got.ConvertedAt)
	}

	if _, err := store.BySource(ctx, "/packages/missing.upk"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count: got %d", n)
	}
}

func TestStorePutReplaces(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	rec := Record{
		SourcePath:   "/a.upk",
		OutputPath:   "/a_decrypted.upk",
		InputDigest:  make([]byte, 32),
		OutputDigest: make([]byte, 32),
		ConvertedAt:  time.Now().UTC(),
	}
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	rec.ChunkCount = 9
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, err := store.BySource(ctx, "/a.upk")
	if err != nil {
		t.Fatalf("BySource: %v", err)
	}
	if got.ChunkCount != 9 {
		t.Fatalf("replace lost: %+v", got)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count after replace: got %d", n)
	}
}

func TestStoreReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	rec := Record{
		SourcePath:   "/b.upk",
		OutputPath:   "/b_decrypted.upk",
		InputDigest:  make([]byte, 32),
		OutputDigest: make([]byte, 32),
		ConvertedAt:  time.Now().UTC(),
	}
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = store.Close() }()
	if _, err := store.BySource(ctx, "/b.upk"); err != nil {
		t.Fatalf("BySource after reopen: %v", err)
	}
}
