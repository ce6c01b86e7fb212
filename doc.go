// Package marionette is a 2D skeletal pose library for [Ebitengine] editors.
//
// Marionette provides the building blocks an animation tool needs to store,
// apply, and interactively blend character poses: a rig/pose data model,
// selection-aware pose backups, a blend evaluator, pose mirroring, keyframe
// auto-insertion, and the interactive blend session that ties them together.
//
// # Interactive blending
//
// The centerpiece is [Session], a modal state machine driven by the host's
// event loop. A session snapshots the rig, previews the blended result as a
// slider factor changes, and guarantees the rig ends in a consistent state
// (committed, or fully restored) on every exit path:
//
//	opts := marionette.BlendOptions()
//	opts.ReleaseConfirm = true
//	session, err := marionette.BlendPoseAsset(ctx, opts, startEvent)
//	if err != nil {
//		// no session was created; the rig is untouched
//	}
//	// each frame:
//	for _, ev := range source.Poll(nil) {
//		if session.Modal(ev) != marionette.ModalRunning {
//			session = nil
//			break
//		}
//	}
//
// During the session, pointer movement scrubs the blend factor, Tab toggles
// between the original and blended pose, F flips the target pose left/right,
// Escape or right-click cancels, and left-click/Enter/Space confirms. On
// confirmation, keyframes are inserted for the affected joints if auto-keying
// is enabled on the rig.
//
// For a one-shot, non-interactive apply, use [ApplyPoseAsset]. For a
// time-eased apply (animated over a duration rather than scrubbed by the
// user), use [NewBlendTween], which follows the same update-per-frame
// contract as willow's tween groups (via [gween]).
//
// # Hosts
//
// A [Host] connects a session to the surrounding editor through optional
// callbacks: status-bar text, pose invalidation, change notifiers, and the
// interface lock used while mirroring perturbs the rig. All callbacks are
// optional; a zero Host is valid for headless use.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package marionette
