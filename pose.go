package marionette

import "sort"

// Pose is a stored set of per-joint transforms, keyed by joint name. Poses
// are what a pose library holds and what a blend session applies onto a rig.
//
// A Pose follows the same dispose discipline as willow nodes: whoever owns a
// pose (a library entry, or a session that produced a private copy) calls
// Dispose exactly once when done with it. Using a disposed pose is a
// programming error, caught by the debug checks when debug mode is on.
type Pose struct {
	Name string

	joints   map[string]JointPose
	sorted   []string // cached sorted joint names; nil when stale
	disposed bool
}

// NewPose creates an empty pose with the given name.
func NewPose(name string) *Pose {
	return &Pose{
		Name:   name,
		joints: make(map[string]JointPose),
	}
}

// SetJoint stores the transform for the named joint, replacing any previous
// value.
func (p *Pose) SetJoint(name string, jp JointPose) {
	p.joints[name] = jp
	p.sorted = nil
}

// Joint returns the stored transform for the named joint and whether the
// pose contains it.
func (p *Pose) Joint(name string) (JointPose, bool) {
	jp, ok := p.joints[name]
	return jp, ok
}

// JointNames returns the names of all joints in the pose, sorted. The
// returned slice is cached and must not be modified.
func (p *Pose) JointNames() []string {
	if p.sorted == nil {
		p.sorted = make([]string, 0, len(p.joints))
		for name := range p.joints {
			p.sorted = append(p.sorted, name)
		}
		sort.Strings(p.sorted)
	}
	return p.sorted
}

// Len returns the number of joints in the pose.
func (p *Pose) Len() int {
	return len(p.joints)
}

// Clone returns an independent copy of the pose. The copy is not disposed,
// regardless of the receiver's state.
func (p *Pose) Clone() *Pose {
	c := NewPose(p.Name)
	for name, jp := range p.joints {
		c.joints[name] = jp
	}
	return c
}

// Dispose marks the pose as released. Dispose is idempotent.
func (p *Pose) Dispose() {
	p.disposed = true
}

// IsDisposed reports whether Dispose has been called on this pose.
func (p *Pose) IsDisposed() bool {
	return p.disposed
}
