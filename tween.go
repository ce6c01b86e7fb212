package marionette

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BlendTween applies a pose onto a rig gradually over a duration instead of
// interactively: the blend factor is animated by a gween tween, and each
// Update restores the backup and re-evaluates at the current factor, so the
// result is never a compounded blend.
//
// There is no global animation manager — callers drive Update themselves,
// once per frame, the same way willow tween groups work. If the pose is
// disposed mid-animation, the tween stops immediately and leaves the rig
// restored.
type BlendTween struct {
	tween  *gween.Tween
	rig    *Rig
	pose   *Pose
	backup *PoseBackup
	Done   bool
}

// NewBlendTween creates a tween that animates the blend factor from 0 to
// toFactor over duration seconds using the easing function, snapshotting the
// rig's current pose as the restore baseline.
func NewBlendTween(rig *Rig, pose *Pose, toFactor float64, duration float32, fn ease.TweenFunc) *BlendTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &BlendTween{
		tween:  gween.New(0, float32(clamp(toFactor, 0, 1)), duration, fn),
		rig:    rig,
		pose:   pose,
		backup: NewPoseBackup(rig, pose),
	}
}

// Update advances the tween by dt seconds and re-applies the blend at the new
// factor. Sets Done when the tween finishes. A disposed pose aborts the
// animation: the backup is restored and Done is set without applying.
func (b *BlendTween) Update(dt float32) {
	if b.Done {
		return
	}

	if b.pose.IsDisposed() {
		b.backup.Restore()
		b.Done = true
		return
	}

	factor, finished := b.tween.Update(dt)
	b.backup.Restore()
	ApplyPoseBlend(b.rig, b.pose, float64(factor), nil)
	b.Done = finished
}

// Cancel restores the rig to its pre-tween pose and marks the tween done.
func (b *BlendTween) Cancel() {
	b.backup.Restore()
	b.Done = true
}
