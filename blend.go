package marionette

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// Errors surfaced by the blend entry points.
var (
	// ErrInvalidContext means no posable rig is available.
	ErrInvalidContext = errors.New("pose blending requires a posable rig")

	// ErrAssetUnavailable means the referenced pose asset could not be
	// resolved.
	ErrAssetUnavailable = errors.New("pose asset unavailable")

	// ErrInternalState means session teardown ran from a non-terminal state.
	// This indicates a logic defect; the session recovers by restoring the
	// original pose.
	ErrInternalState = errors.New("internal pose blend state error")
)

// blendState is the session's position in the modal state machine.
type blendState uint8

const (
	stateInit     blendState = iota // created, backup not yet taken
	stateBlending                   // previewing the blended result
	stateOriginal                   // temporarily showing the pre-session pose
	stateConfirm                    // terminal: commit the blend
	stateCancel                     // terminal: discard the blend
)

// ModalResult is what Session.Modal returns to the host event loop.
type ModalResult uint8

const (
	ModalRunning   ModalResult = iota // keep delivering events
	ModalFinished                     // session confirmed and torn down
	ModalCancelled                    // session cancelled and torn down
)

// Options configures both blend entry points. After a confirmed session the
// final blend factor is written back into the Options value, so a host's
// redo/repeat machinery sees the actually-used amount.
type Options struct {
	// BlendFactor is the initial blend amount in [0, 1]; values outside the
	// interval are clamped.
	BlendFactor float64

	// Flipped mirrors the target pose over the rig's symmetry axis before
	// use.
	Flipped bool

	// ReleaseConfirm makes releasing the input that started an interactive
	// session confirm it. Ignored by ApplyPoseAsset. Hosts should not record
	// it in redo history.
	ReleaseConfirm bool

	// Easing remaps the blend factor before evaluation. Nil means
	// ease.Linear, i.e. an exact lerp.
	Easing ease.TweenFunc
}

// ApplyOptions returns the defaults for the single-shot entry point: apply
// the pose fully.
func ApplyOptions() *Options {
	return &Options{BlendFactor: 1}
}

// BlendOptions returns the defaults for the interactive entry point.
// Blending always starts at 0%, not at whatever amount was last used.
func BlendOptions() *Options {
	return &Options{BlendFactor: 0}
}

// Context carries what a blend operation needs from the host editor: the rig
// to pose, the pose asset to blend in, and the host callbacks.
type Context struct {
	Rig   *Rig
	Asset AssetRef
	Host  *Host
}

// Session is one interactive pose blend in progress: a modal state machine
// owning a backup of the rig's pre-session pose. The host event loop drives
// it by calling Modal with each input event until a result other than
// ModalRunning comes back; at that point the session has already torn itself
// down and must not be used again.
//
// At most one session may be active per rig at a time; enforcing that is the
// caller's responsibility.
type Session struct {
	state       blendState
	needsRedraw bool

	releaseConfirm struct {
		enabled  bool
		initKind InputKind
	}

	// lease is the temporary resolution state for the pose asset.
	lease *poseLease

	factor float64
	backup *PoseBackup

	rig        *Rig
	target     *Pose
	ownsTarget bool // target was produced by resolution copy or flip and must be disposed

	host       *Host
	opts       *Options
	slider     *Slider
	statusText string
}

// CanBlendPose reports whether the blend entry points can run in the given
// context: an active posable rig exists and the asset reference identifies a
// pose-kind asset.
func CanBlendPose(ctx *Context) bool {
	if ctx == nil || ctx.Rig == nil || !ctx.Rig.CanPose() {
		return false
	}
	return ctx.Asset.isPoseAsset()
}

// BlendPoseAsset starts an interactive blend session. The originating event
// seeds the slider anchor and, when opts.ReleaseConfirm is set, records which
// input confirms on release. An initial apply runs before returning so the
// host has something to look at.
//
// On error no session state leaks and the rig is untouched.
func BlendPoseAsset(ctx *Context, opts *Options, ev InputEvent) (*Session, error) {
	s, err := newSession(ctx, opts, &ev)
	if err != nil {
		return nil, err
	}
	s.apply()
	return s, nil
}

// ApplyPoseAsset applies the referenced pose once at opts.BlendFactor and
// immediately confirms: backup, apply, auto-key, teardown.
func ApplyPoseAsset(ctx *Context, opts *Options) error {
	s, err := newSession(ctx, opts, nil)
	if err != nil {
		return err
	}
	s.apply()
	s.state = stateConfirm
	s.exit()
	return nil
}

// newSession builds a valid session or fails cleanly. ev is nil for the
// single-shot entry point; when present, release-confirm matching and the
// slider are configured from it.
func newSession(ctx *Context, opts *Options, ev *InputEvent) (*Session, error) {
	if ctx == nil || ctx.Rig == nil || !ctx.Rig.CanPose() {
		return nil, ErrInvalidContext
	}

	s := &Session{
		state:       stateInit,
		needsRedraw: true,
		factor:      clamp(opts.BlendFactor, 0, 1),
		rig:         ctx.Rig,
		host:        ctx.Host,
		opts:        opts,
	}

	lease, err := ctx.Asset.resolvePose()
	if err != nil {
		// Nothing beyond the bare struct exists yet; free tolerates that.
		s.free()
		return nil, err
	}
	s.lease = lease
	s.target = lease.pose

	if opts.Flipped {
		s.target = flipPoseLocked(s.host, s.rig, s.target)
		s.ownsTarget = true
	}

	// Release confirm and the slider only exist when there is a live input
	// event stream to work with.
	if ev != nil {
		s.releaseConfirm.enabled = opts.ReleaseConfirm
		if s.releaseConfirm.enabled {
			s.releaseConfirm.initKind = ev.Kind
		}
		s.slider = NewSlider(ev.X, s.factor)
		s.slider.SetAllowOvershoot(false)
	}

	// Make the backup for blending and restoring the pose.
	s.createBackup()

	// Keep downstream evaluation from stomping the backup/blend mid-session.
	s.rig.LockPose()

	return s, nil
}

// createBackup snapshots the rig against the current target pose and, on
// first use, moves the state machine from Init to Blending.
func (s *Session) createBackup() {
	s.backup = NewPoseBackup(s.rig, s.target)
	if s.state == stateInit {
		s.state = stateBlending
	}
}

// setFactor clamps and stores a new blend factor and marks the session dirty.
func (s *Session) setFactor(factor float64) {
	s.factor = clamp(factor, 0, 1)
	s.needsRedraw = true
}

// Factor returns the current blend factor.
func (s *Session) Factor() float64 {
	return s.factor
}

// StatusText returns the most recently built header text.
func (s *Session) StatusText() string {
	return s.statusText
}

// Modal consumes one input event and advances the session. When the event
// drives the state machine into a terminal state, the session tears down and
// ModalFinished or ModalCancelled is returned; otherwise the pending
// recompute runs (if anything changed) and ModalRunning is returned.
func (s *Session) Modal(ev InputEvent) ModalResult {
	s.handleEvent(ev)

	if s.state == stateConfirm || s.state == stateCancel {
		return s.exit()
	}

	if s.needsRedraw {
		s.statusText = s.buildStatusText()
		s.host.setStatusText(s.statusText)
		s.apply()
	}
	return ModalRunning
}

// handleEvent interprets one input event into a state transition. The slider
// always sees the event first, because pointer movement and key presses can
// arrive together.
func (s *Session) handleEvent(ev InputEvent) {
	if s.slider != nil {
		s.slider.Handle(ev)
		s.setFactor(s.slider.Factor())
	}

	if ev.Kind == KindPointerMove {
		return
	}

	// Release confirm has priority over all other input handling.
	if s.releaseConfirm.enabled &&
		ev.Kind == s.releaseConfirm.initKind &&
		ev.Action == ActionRelease {
		s.state = stateConfirm
		return
	}

	// Only accept press events; ignoring releases avoids double actions.
	if ev.Action != ActionPress && ev.Action != ActionNothing {
		return
	}

	switch ev.Kind {
	case KindKeyEscape, KindButtonSecondary:
		s.state = stateCancel

	case KindButtonPrimary, KindKeyReturn, KindKeySpace:
		s.state = stateConfirm

	case KindKeyTab:
		if s.state == stateBlending {
			s.state = stateOriginal
		} else {
			s.state = stateBlending
		}
		s.needsRedraw = true

	case KindKeyFlip:
		s.flipTarget()
	}
}

// flipTarget replaces the target pose with its mirror image: restore the
// rig to the backup, swap in the flipped copy, and rebuild the backup against
// the new joint set (flipping changes which joints matter).
func (s *Session) flipTarget() {
	old := s.target
	flipped := flipPoseLocked(s.host, s.rig, old)

	// Before flipping over to the other side, this side must be restored.
	s.backup.Restore()
	s.backup = nil

	if s.ownsTarget {
		old.Dispose()
	}
	s.ownsTarget = true
	s.target = flipped
	s.needsRedraw = true

	s.createBackup()
}

// apply reconciles the rig with the session state: restore the backup to a
// known baseline, then blend the target pose on top if the session is in the
// Blending state. Idempotent; a no-op unless something changed since the
// last apply.
func (s *Session) apply() {
	if !s.needsRedraw {
		return
	}

	s.backup.Restore()

	// The pose changed either way — whether the restore is the final result
	// or the baseline for the blend below.
	s.host.invalidateRig(s.rig)
	s.host.notifyPoseChanged(s.rig)

	if s.state == stateBlending {
		ApplyPoseBlend(s.rig, s.target, s.factor, s.opts.Easing)
	}

	s.needsRedraw = false
}

// buildStatusText composes the header text for the current state.
func (s *Session) buildStatusText() string {
	tab := "[Tab] - Show blended pose"
	if s.state == stateBlending {
		tab = "[Tab] - Show original pose"
	}
	sliderText := ""
	if s.slider != nil {
		sliderText = s.slider.StatusString()
	}
	return fmt.Sprintf("[F] - Flip pose | %s | %s", tab, sliderText)
}

// ForceCancel cancels the session from outside the event loop, e.g. when the
// host shuts down while a session is active. The rig is restored to its
// pre-session pose.
func (s *Session) ForceCancel() {
	s.state = stateCancel
	s.exit()
}

// exit runs the full teardown: state-dependent finalization, then resource
// release. Runs exactly once per session.
func (s *Session) exit() ModalResult {
	exitState := s.state
	s.cleanup()
	s.free()

	if exitState == stateCancel {
		return ModalCancelled
	}
	return ModalFinished
}

// cleanup leaves the rig in a consistent state for the session's exit state:
// committed (Confirmed) or restored (everything else).
func (s *Session) cleanup() {
	s.statusText = ""
	s.host.setStatusText("")
	s.slider = nil

	// Inverse of the lock taken at init; downstream evaluation may resume.
	s.rig.UnlockPose()

	switch s.state {
	case stateConfirm:
		keyTagPose(s)
		// Make redo/repeat use the actually-used factor, not the initial one.
		if s.opts != nil {
			s.opts.BlendFactor = s.factor
		}

	case stateInit, stateBlending, stateOriginal:
		// Teardown must never run from these states. Recover by restoring
		// the original pose instead of leaving the rig mid-blend.
		debugf("session teardown from non-terminal state %d", s.state)
		s.host.reportError(ErrInternalState.Error() + ", canceling")
		fallthrough

	case stateCancel:
		if s.backup != nil {
			s.backup.Restore()
		}
	}

	s.host.invalidateRig(s.rig)
	s.host.notifyPoseChanged(s.rig)
	s.host.refreshHover()
}

// free releases everything the session owns. Unconditional, and tolerant of
// a session that failed partway through initialization.
func (s *Session) free() {
	if s.ownsTarget && s.target != nil {
		// Dispose before releasing the lease, so the lease never sees an
		// indirectly referenced target.
		s.target.Dispose()
	}
	s.target = nil
	s.ownsTarget = false

	if s.lease != nil {
		s.lease.release()
		s.lease = nil
	}
	s.backup = nil
}
