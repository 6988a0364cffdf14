package main

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	got, err := outputName(filepath.Join("pkg", "Startup.upk"), "", "_decrypted")
	if err != nil {
		t.Fatalf("outputName: %v", err)
	}
	want := filepath.Join("pkg", "Startup_decrypted.upk")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOutputNameCaseInsensitiveExt(t *testing.T) {
	got, err := outputName("Startup.UPK", "", "_decrypted")
	if err != nil {
		t.Fatalf("outputName: %v", err)
	}
	if got != "Startup_decrypted.UPK" {
		t.Fatalf("got %q", got)
	}
}

func TestOutputNameOutDir(t *testing.T) {
	got, err := outputName(filepath.Join("pkg", "Startup.upk"), "out", "_decrypted")
	if err != nil {
		t.Fatalf("outputName: %v", err)
	}
	if got != filepath.Join("out", "Startup_decrypted.upk") {
		t.Fatalf("got %q", got)
	}
}

func TestOutputNameRejectsWrongExtension(t *testing.T) {
	if _, err := outputName("readme.txt", "", "_decrypted"); !errors.Is(err, ErrNotPackageFile) {
		t.Fatalf("expected ErrNotPackageFile, got %v", err)
	}
}

func TestOutputNameRejectsConvertedInput(t *testing.T) {
	if _, err := outputName("Startup_decrypted.upk", "", "_decrypted"); !errors.Is(err, ErrAlreadyConverted) {
		t.Fatalf("expected ErrAlreadyConverted, got %v", err)
	}
	if _, err := outputName("Startup_Decrypted.upk", "", "_decrypted"); !errors.Is(err, ErrAlreadyConverted) {
		t.Fatalf("expected ErrAlreadyConverted for mixed case, got %v", err)
	}
}
