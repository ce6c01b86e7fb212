package marionette

import "fmt"

// AssetKind distinguishes what an asset library entry holds.
type AssetKind uint8

const (
	AssetNone AssetKind = iota // no such entry
	AssetPose                  // a stored Pose
	AssetClip                  // an animation clip (not usable for pose blending)
)

type assetEntry struct {
	kind     AssetKind
	pose     *Pose
	external bool // linked from elsewhere; resolution must hand out a private copy
}

// AssetLibrary is a named collection of pose assets. It stands in for
// whatever asset browser or on-disk library the host editor uses; sessions
// only ever resolve entries through an AssetRef.
type AssetLibrary struct {
	entries map[string]*assetEntry
}

// NewAssetLibrary creates an empty asset library.
func NewAssetLibrary() *AssetLibrary {
	return &AssetLibrary{entries: make(map[string]*assetEntry)}
}

// AddPose adds a local pose asset. The library lends the pose out as-is;
// resolvers must not dispose it.
func (l *AssetLibrary) AddPose(pose *Pose) {
	l.entries[pose.Name] = &assetEntry{kind: AssetPose, pose: pose}
}

// AddExternalPose adds a linked pose asset. Resolution hands out a private,
// disposable copy instead of the linked original.
func (l *AssetLibrary) AddExternalPose(pose *Pose) {
	l.entries[pose.Name] = &assetEntry{kind: AssetPose, pose: pose, external: true}
}

// AddClip registers a non-pose asset under the given name. Useful for hosts
// whose libraries mix asset kinds; pose operations refuse such entries.
func (l *AssetLibrary) AddClip(name string) {
	l.entries[name] = &assetEntry{kind: AssetClip}
}

// Kind returns the kind of the named entry, or AssetNone.
func (l *AssetLibrary) Kind(name string) AssetKind {
	if e, ok := l.entries[name]; ok {
		return e.kind
	}
	return AssetNone
}

// AssetRef identifies one asset in a library. The zero value refers to
// nothing.
type AssetRef struct {
	Library *AssetLibrary
	Name    string
}

// isPoseAsset reports whether the reference identifies a pose-kind asset.
func (ref AssetRef) isPoseAsset() bool {
	return ref.Library != nil && ref.Library.Kind(ref.Name) == AssetPose
}

// poseLease is the temporary resolution state for one resolved pose asset.
// For external entries it owns a private copy and disposes it on release;
// local entries are merely borrowed.
type poseLease struct {
	pose     *Pose
	owned    bool
	released bool
}

// resolvePose resolves the reference into a usable pose, wrapped in a lease
// the caller must release. Fails with ErrAssetUnavailable if the reference
// does not identify a resolvable pose asset.
func (ref AssetRef) resolvePose() (*poseLease, error) {
	if ref.Library == nil {
		return nil, fmt.Errorf("no pose library in context: %w", ErrAssetUnavailable)
	}
	e := ref.Library.entries[ref.Name]
	if e == nil || e.kind != AssetPose || e.pose == nil {
		return nil, fmt.Errorf("pose asset %q: %w", ref.Name, ErrAssetUnavailable)
	}
	if e.external {
		return &poseLease{pose: e.pose.Clone(), owned: true}, nil
	}
	return &poseLease{pose: e.pose}, nil
}

// release frees the lease's temporary state. Idempotent.
func (l *poseLease) release() {
	if l.released {
		return
	}
	l.released = true
	if l.owned {
		l.pose.Dispose()
	}
}
