package marionette

import "sort"

// Keyframe is one recorded joint transform at a frame.
type Keyframe struct {
	Frame float64
	Value JointPose
}

// Timeline holds a rig's animation data: per-joint keyframe tracks and the
// current frame. A Timeline bound to a shared (linked-in) resource is not
// editable; auto-keying refuses to write to it.
type Timeline struct {
	// Frame is the current frame, where auto-keying inserts keys.
	Frame float64

	// Shared marks the timeline as bound to a non-editable shared resource.
	Shared bool

	tracks map[string][]Keyframe
}

// NewTimeline creates an empty timeline at frame 0.
func NewTimeline() *Timeline {
	return &Timeline{tracks: make(map[string][]Keyframe)}
}

// InsertKeys records the current transform of every source joint as a
// keyframe at the current frame. A key already present at that frame on a
// track is replaced. Keys on each track stay sorted by frame.
func (t *Timeline) InsertKeys(sources []*Joint) {
	for _, j := range sources {
		t.insertKey(j.Name, Keyframe{Frame: t.Frame, Value: j.Transform})
	}
}

func (t *Timeline) insertKey(name string, key Keyframe) {
	track := t.tracks[name]
	i := sort.Search(len(track), func(i int) bool {
		return track[i].Frame >= key.Frame
	})
	if i < len(track) && track[i].Frame == key.Frame {
		track[i] = key
	} else {
		track = append(track, Keyframe{})
		copy(track[i+1:], track[i:])
		track[i] = key
	}
	t.tracks[name] = track
}

// Keys returns the keyframe track for the named joint, sorted by frame. The
// returned slice must not be modified.
func (t *Timeline) Keys(name string) []Keyframe {
	return t.tracks[name]
}

// keyTagPose auto-keys the joints affected by a confirmed blend: for each
// joint group named in the target pose, the corresponding rig joint is a
// keying source unless the backup was selection-filtered and the joint is not
// currently selected. The whole source set is inserted in one call, then
// keyframe listeners are notified.
//
// No-ops entirely if auto-keying is disabled for the rig, the rig has no
// timeline, or the timeline is bound to a non-editable shared resource.
func keyTagPose(s *Session) {
	r := s.rig
	if !r.AutoKey {
		return
	}
	tl := r.Timeline
	if tl == nil || tl.Shared {
		// Changes to linked-in animation data are not allowed.
		return
	}

	var sources []*Joint
	for _, name := range s.target.JointNames() {
		j := r.Joint(name)
		if j == nil {
			continue
		}
		if s.backup != nil && s.backup.SelectionRelevant() && !j.Selected {
			continue
		}
		sources = append(sources, j)
	}

	tl.InsertKeys(sources)
	s.host.notifyKeyframesChanged(r)
}
