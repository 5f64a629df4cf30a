package vbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

func TestMediumResolver_EmptyDVD(t *testing.T) {
	r := MediumResolver{}

	got, err := r.Resolve("", v1alpha1.DeviceDVD)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != MediumEmptyDrive {
		t.Errorf("expected %q, got %q", MediumEmptyDrive, got)
	}
}

func TestMediumResolver_EmptyLocationRequiresDVD(t *testing.T) {
	r := MediumResolver{}

	for _, kind := range []v1alpha1.DeviceKind{v1alpha1.DeviceDisk, v1alpha1.DeviceFloppy} {
		if _, err := r.Resolve("", kind); err == nil {
			t.Errorf("expected error for empty %s location", kind)
		}
	}
}

func TestMediumResolver_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.vdi")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	r := MediumResolver{}
	got, err := r.Resolve(path, v1alpha1.DeviceDisk)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %q", got)
	}
	if got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}

func TestMediumResolver_MissingFile(t *testing.T) {
	r := MediumResolver{}

	if _, err := r.Resolve(filepath.Join(t.TempDir(), "missing.vdi"), v1alpha1.DeviceDisk); err == nil {
		t.Fatal("expected error for missing medium")
	}
}
