package marionette

// backupEntry pairs a rig joint with its saved transform.
type backupEntry struct {
	joint *Joint
	saved JointPose
}

// PoseBackup is a snapshot of a rig's pre-blend pose, restricted to the
// joints a pose touches. It is the restore baseline for every blend apply and
// the safety net for cancellation.
//
// Selection filtering follows the pose-library rule: if any of the joints
// named by the pose is selected on the rig, only the selected ones are
// captured and the backup is selection-relevant; otherwise all named joints
// are captured.
type PoseBackup struct {
	rig               *Rig
	entries           []backupEntry
	selectionRelevant bool
}

// NewPoseBackup snapshots the rig joints named by pose, applying the
// selection filter described on PoseBackup. Joints named by the pose that do
// not exist on the rig are skipped.
func NewPoseBackup(rig *Rig, pose *Pose) *PoseBackup {
	b := &PoseBackup{
		rig:               rig,
		selectionRelevant: poseSelectionRelevant(rig, pose),
	}
	for _, name := range pose.JointNames() {
		j := rig.Joint(name)
		if j == nil {
			continue
		}
		if b.selectionRelevant && !j.Selected {
			continue
		}
		b.entries = append(b.entries, backupEntry{joint: j, saved: j.Transform})
	}
	return b
}

// Restore writes the saved transforms back onto the rig.
func (b *PoseBackup) Restore() {
	for _, e := range b.entries {
		e.joint.Transform = e.saved
	}
}

// SelectionRelevant reports whether the backup was filtered by joint
// selection. When true, operations keyed off the backup (auto-keying) must
// skip unselected joints too.
func (b *PoseBackup) SelectionRelevant() bool {
	return b.selectionRelevant
}

// JointNames returns the names of the joints captured by the backup, in
// capture order.
func (b *PoseBackup) JointNames() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.joint.Name
	}
	return names
}

// poseSelectionRelevant reports whether any rig joint named by the pose is
// selected. Shared by the backup store and the blend evaluator so both apply
// the same filter.
func poseSelectionRelevant(rig *Rig, pose *Pose) bool {
	for _, name := range pose.JointNames() {
		if j := rig.Joint(name); j != nil && j.Selected {
			return true
		}
	}
	return false
}
