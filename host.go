package marionette

// Host connects pose operations to the surrounding editor. Every field is an
// optional callback, in the same style as willow's per-node event callbacks;
// nil fields (or a nil *Host) are simply skipped, so a zero Host is valid for
// headless use.
type Host struct {
	// SetStatusText presents header text during an interactive session.
	// Called with "" to clear it.
	SetStatusText func(text string)

	// InvalidateRig is called whenever the rig's evaluated pose is stale and
	// must be recomputed downstream.
	InvalidateRig func(rig *Rig)

	// NotifyPoseChanged is called after the rig's pose data changed.
	NotifyPoseChanged func(rig *Rig)

	// NotifyKeyframesChanged is called after auto-keying inserted keyframes.
	NotifyKeyframesChanged func(rig *Rig)

	// RefreshHover nudges the host to recompute hover/highlight state after
	// a session ends.
	RefreshHover func()

	// SetInterfaceLocked and InterfaceLocked implement the cooperative
	// repaint lock held while pose mirroring perturbs the rig.
	SetInterfaceLocked func(locked bool)
	InterfaceLocked    func() bool

	// ReportError surfaces a user-visible error message.
	ReportError func(msg string)
}

func (h *Host) setStatusText(text string) {
	if h != nil && h.SetStatusText != nil {
		h.SetStatusText(text)
	}
}

func (h *Host) invalidateRig(rig *Rig) {
	if h != nil && h.InvalidateRig != nil {
		h.InvalidateRig(rig)
	}
}

func (h *Host) notifyPoseChanged(rig *Rig) {
	if h != nil && h.NotifyPoseChanged != nil {
		h.NotifyPoseChanged(rig)
	}
}

func (h *Host) notifyKeyframesChanged(rig *Rig) {
	if h != nil && h.NotifyKeyframesChanged != nil {
		h.NotifyKeyframesChanged(rig)
	}
}

func (h *Host) refreshHover() {
	if h != nil && h.RefreshHover != nil {
		h.RefreshHover()
	}
}

func (h *Host) setInterfaceLocked(locked bool) {
	if h != nil && h.SetInterfaceLocked != nil {
		h.SetInterfaceLocked(locked)
	}
}

func (h *Host) interfaceLocked() bool {
	if h != nil && h.InterfaceLocked != nil {
		return h.InterfaceLocked()
	}
	return false
}

func (h *Host) reportError(msg string) {
	if h != nil && h.ReportError != nil {
		h.ReportError(msg)
		return
	}
	debugf("unreported error: %s", msg)
}
