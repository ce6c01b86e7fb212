package marionette

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// JointPose holds one joint's transform channels: local position, rotation
// (radians), and scale. It is both the live per-joint state on a Rig and the
// stored per-joint value in a Pose.
type JointPose struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
}

// IdentityJointPose is the rest transform for a joint.
var IdentityJointPose = JointPose{ScaleX: 1, ScaleY: 1}

// lerpJointPose interpolates every channel of from toward to by t.
// t is not clamped; values outside [0, 1] extrapolate.
func lerpJointPose(from, to JointPose, t float64) JointPose {
	return JointPose{
		X:        from.X + (to.X-from.X)*t,
		Y:        from.Y + (to.Y-from.Y)*t,
		Rotation: from.Rotation + (to.Rotation-from.Rotation)*t,
		ScaleX:   from.ScaleX + (to.ScaleX-from.ScaleX)*t,
		ScaleY:   from.ScaleY + (to.ScaleY-from.ScaleY)*t,
	}
}

// mirrorJointPose reflects a transform across the rig's vertical symmetry
// axis: X and Rotation are negated, Y and scale are preserved.
func mirrorJointPose(jp JointPose) JointPose {
	jp.X = -jp.X
	jp.Rotation = -jp.Rotation
	return jp
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
