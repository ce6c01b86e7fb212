package marionette

import (
	"errors"
	"testing"
)

func TestAssetLibraryKind(t *testing.T) {
	lib := NewAssetLibrary()
	lib.AddPose(wavePose())
	lib.AddClip("run")

	tests := []struct {
		name string
		want AssetKind
	}{
		{"wave", AssetPose},
		{"run", AssetClip},
		{"missing", AssetNone},
	}
	for _, tt := range tests {
		if got := lib.Kind(tt.name); got != tt.want {
			t.Errorf("Kind(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveLocalPoseIsBorrowed(t *testing.T) {
	lib := NewAssetLibrary()
	original := wavePose()
	lib.AddPose(original)

	lease, err := AssetRef{Library: lib, Name: "wave"}.resolvePose()
	if err != nil {
		t.Fatalf("resolvePose failed: %v", err)
	}
	if lease.pose != original {
		t.Error("local asset should be lent out as-is, not copied")
	}

	lease.release()
	if original.IsDisposed() {
		t.Error("releasing a borrowed lease must not dispose the library's pose")
	}
}

func TestResolveExternalPoseIsOwnedCopy(t *testing.T) {
	lib := NewAssetLibrary()
	linked := wavePose()
	lib.AddExternalPose(linked)

	lease, err := AssetRef{Library: lib, Name: "wave"}.resolvePose()
	if err != nil {
		t.Fatalf("resolvePose failed: %v", err)
	}
	if lease.pose == linked {
		t.Fatal("external asset must resolve to a private copy")
	}

	lease.release()
	if !lease.pose.IsDisposed() {
		t.Error("releasing an owned lease must dispose the copy")
	}
	if linked.IsDisposed() {
		t.Error("the linked original must stay live")
	}
}

func TestResolvePoseFailures(t *testing.T) {
	lib := NewAssetLibrary()
	lib.AddClip("run")

	tests := []struct {
		name string
		ref  AssetRef
	}{
		{"nil library", AssetRef{Name: "wave"}},
		{"missing entry", AssetRef{Library: lib, Name: "wave"}},
		{"clip entry", AssetRef{Library: lib, Name: "run"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ref.resolvePose()
			if !errors.Is(err, ErrAssetUnavailable) {
				t.Errorf("err = %v, want ErrAssetUnavailable", err)
			}
		})
	}
}

func TestLeaseReleaseIdempotent(t *testing.T) {
	lib := NewAssetLibrary()
	lib.AddExternalPose(wavePose())

	lease, err := AssetRef{Library: lib, Name: "wave"}.resolvePose()
	if err != nil {
		t.Fatalf("resolvePose failed: %v", err)
	}
	lease.release()
	lease.release()
	if !lease.pose.IsDisposed() {
		t.Error("owned copy not disposed")
	}
}
