package marionette

// JointDef describes one joint in a skeleton: its name and the name of its
// parent joint ("" for a root joint).
type JointDef struct {
	Name   string
	Parent string
}

// Skeleton is the shared joint-hierarchy definition a rig is built from.
// Several rigs may share one skeleton.
type Skeleton struct {
	Name   string
	Joints []JointDef
}

// Joint is the live, posable state of one skeleton joint on a rig.
type Joint struct {
	Name      string
	Parent    *Joint
	Transform JointPose
	Selected  bool
}

// Rig is a posable skeletal object: a skeleton definition plus live per-joint
// pose data. It is the sole mutable resource a blend session operates on.
type Rig struct {
	Name string

	// AutoKey enables automatic keyframe insertion when a blend session is
	// confirmed. Requires a Timeline.
	AutoKey bool

	// Timeline holds the rig's animation data. Nil for an unanimated rig.
	Timeline *Timeline

	skeleton   *Skeleton
	joints     []*Joint // skeleton definition order
	byName     map[string]*Joint
	poseLocked bool
}

// NewRig builds a rig from a skeleton, with every joint at the rest
// transform. Parent references are resolved by name; a missing parent leaves
// the joint parentless.
func NewRig(name string, skel *Skeleton) *Rig {
	r := &Rig{
		Name:     name,
		skeleton: skel,
		byName:   make(map[string]*Joint),
	}
	if skel == nil {
		return r
	}
	for _, def := range skel.Joints {
		j := &Joint{Name: def.Name, Transform: IdentityJointPose}
		r.joints = append(r.joints, j)
		r.byName[def.Name] = j
	}
	for i, def := range skel.Joints {
		if def.Parent != "" {
			r.joints[i].Parent = r.byName[def.Parent]
		}
	}
	return r
}

// CanPose reports whether the rig is in a posable state: it has both a
// skeleton definition and live pose data.
func (r *Rig) CanPose() bool {
	return r.skeleton != nil && len(r.joints) > 0
}

// Skeleton returns the rig's skeleton definition.
func (r *Rig) Skeleton() *Skeleton {
	return r.skeleton
}

// Joint returns the named joint, or nil if the rig has no such joint.
func (r *Rig) Joint(name string) *Joint {
	return r.byName[name]
}

// Joints returns the rig's joints in skeleton definition order. The returned
// slice must not be modified.
func (r *Rig) Joints() []*Joint {
	return r.joints
}

// HasSelectedJoints reports whether any joint on the rig is selected.
func (r *Rig) HasSelectedJoints() bool {
	for _, j := range r.joints {
		if j.Selected {
			return true
		}
	}
	return false
}

// LockPose marks the rig's pose as locked against external re-evaluation.
// The lock is advisory: it signals other subsystems (typically an automatic
// re-evaluation pass) not to touch the pose while a blend session owns it.
func (r *Rig) LockPose() {
	r.poseLocked = true
}

// UnlockPose clears the advisory pose lock.
func (r *Rig) UnlockPose() {
	r.poseLocked = false
}

// PoseLocked reports whether the rig's pose is currently locked.
func (r *Rig) PoseLocked() bool {
	return r.poseLocked
}

// snapshotJoints captures every joint's current transform, in joint order.
// Used by operations that perturb the whole rig and must put it back.
func (r *Rig) snapshotJoints() []JointPose {
	saved := make([]JointPose, len(r.joints))
	for i, j := range r.joints {
		saved[i] = j.Transform
	}
	return saved
}

// restoreJoints writes back transforms captured by snapshotJoints.
func (r *Rig) restoreJoints(saved []JointPose) {
	for i, j := range r.joints {
		j.Transform = saved[i]
	}
}
