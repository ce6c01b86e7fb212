package marionette

import "strings"

// sideSuffixes maps a joint-name side suffix to its mirror. Longest suffixes
// are listed first so ".L" is not matched inside a longer suffix.
var sideSuffixes = [...][2]string{
	{".L", ".R"},
	{".l", ".r"},
	{"_L", "_R"},
	{"_l", "_r"},
}

// FlipSideName returns the name of the mirrored counterpart of a
// side-suffixed joint name ("arm.L" -> "arm.R"). Names without a recognized
// side suffix are returned unchanged; such joints lie on the symmetry axis
// and mirror onto themselves.
func FlipSideName(name string) string {
	for _, pair := range sideSuffixes {
		if strings.HasSuffix(name, pair[0]) {
			return name[:len(name)-len(pair[0])] + pair[1]
		}
		if strings.HasSuffix(name, pair[1]) {
			return name[:len(name)-len(pair[1])] + pair[0]
		}
	}
	return name
}

// FlipPose returns a mirrored copy of pose relative to the rig: each joint's
// transform is reflected across the rig's vertical symmetry axis and stored
// under the opposite-side joint name. The input pose is not modified.
//
// The mirroring resolves transforms through the rig's live pose: the pose is
// temporarily applied in full, read back joint by joint, and the rig is
// restored before returning. Callers that care about mid-operation repaints
// must hold the host interface lock around this call (see Session, which
// saves and restores the prior lock state).
func FlipPose(rig *Rig, pose *Pose) *Pose {
	debugCheckDisposed(pose, "FlipPose")

	saved := rig.snapshotJoints()
	applyPoseRaw(rig, pose)

	flipped := NewPose(pose.Name)
	for _, name := range pose.JointNames() {
		jp, _ := pose.Joint(name)
		if j := rig.Joint(name); j != nil {
			jp = j.Transform
		}
		flipped.SetJoint(FlipSideName(name), mirrorJointPose(jp))
	}

	rig.restoreJoints(saved)
	return flipped
}

// flipPoseLocked wraps FlipPose in the host interface lock. Flipping
// temporarily modifies the rig's live pose, which can cause visual glitches
// if the host repaints mid-operation. The prior lock state is restored rather
// than force-unlocked.
func flipPoseLocked(h *Host, rig *Rig, pose *Pose) *Pose {
	wasLocked := h.interfaceLocked()
	h.setInterfaceLocked(true)
	flipped := FlipPose(rig, pose)
	h.setInterfaceLocked(wasLocked)
	return flipped
}
