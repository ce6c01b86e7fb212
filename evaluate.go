package marionette

import "github.com/tanema/gween/ease"

// ApplyPose applies the pose fully onto the rig (blend factor 1), honoring
// the selection filter.
func ApplyPose(rig *Rig, pose *Pose) {
	ApplyPoseBlend(rig, pose, 1, nil)
}

// ApplyPoseBlend interpolates the rig's current joint transforms toward the
// pose's stored transforms, weighted by factor. The factor is remapped
// through fn before use; nil means ease.Linear, which is the identity on
// [0, 1] and yields an exact per-channel lerp.
//
// If any joint named by the pose is selected on the rig, only the selected
// ones are affected (the same rule PoseBackup uses). Joints named by the pose
// that do not exist on the rig are skipped.
func ApplyPoseBlend(rig *Rig, pose *Pose, factor float64, fn ease.TweenFunc) {
	debugCheckDisposed(pose, "ApplyPoseBlend")
	if fn == nil {
		fn = ease.Linear
	}
	t := float64(fn(float32(factor), 0, 1, 1))

	relevant := poseSelectionRelevant(rig, pose)
	for _, name := range pose.JointNames() {
		j := rig.Joint(name)
		if j == nil {
			continue
		}
		if relevant && !j.Selected {
			continue
		}
		target, _ := pose.Joint(name)
		j.Transform = lerpJointPose(j.Transform, target, t)
	}
}

// applyPoseRaw applies the pose fully with no selection filter. Used by the
// flip algorithm, which must see every named joint regardless of selection.
func applyPoseRaw(rig *Rig, pose *Pose) {
	for _, name := range pose.JointNames() {
		if j := rig.Joint(name); j != nil {
			target, _ := pose.Joint(name)
			j.Transform = target
		}
	}
}
