package marionette

import (
	"encoding/json"
	"fmt"
)

// replayStep represents a single input event in a replay script.
type replayStep struct {
	Action string  `json:"action"`          // "move", "press", "release"
	Kind   string  `json:"kind,omitempty"`  // for press/release: input kind name
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
}

// replayScript is the top-level JSON structure for a replay script.
type replayScript struct {
	Steps []replayStep `json:"steps"`
}

// replayKinds maps script kind names to InputKinds.
var replayKinds = map[string]InputKind{
	"primary":   KindButtonPrimary,
	"secondary": KindButtonSecondary,
	"escape":    KindKeyEscape,
	"return":    KindKeyReturn,
	"space":     KindKeySpace,
	"tab":       KindKeyTab,
	"flip":      KindKeyFlip,
}

// Replay feeds a recorded sequence of input events into a blend session, one
// event per Step call. Useful for scripted regression tests of modal
// behavior and for replaying captured interactions.
type Replay struct {
	events []InputEvent
	cursor int
	done   bool
}

// LoadReplayScript parses a JSON replay script into a Replay ready to drive a
// session.
func LoadReplayScript(jsonData []byte) (*Replay, error) {
	var script replayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse replay script: no steps")
	}

	events := make([]InputEvent, 0, len(script.Steps))
	for i, st := range script.Steps {
		ev := InputEvent{X: st.X, Y: st.Y}
		if st.Shift {
			ev.Modifiers |= ModShift
		}
		if st.Ctrl {
			ev.Modifiers |= ModCtrl
		}
		switch st.Action {
		case "move":
			ev.Kind = KindPointerMove
			ev.Action = ActionNothing
		case "press", "release":
			kind, ok := replayKinds[st.Kind]
			if !ok {
				return nil, fmt.Errorf("parse replay script: step %d: unknown kind %q", i, st.Kind)
			}
			ev.Kind = kind
			ev.Action = ActionPress
			if st.Action == "release" {
				ev.Action = ActionRelease
			}
		default:
			return nil, fmt.Errorf("parse replay script: step %d: unknown action %q", i, st.Action)
		}
		events = append(events, ev)
	}
	return &Replay{events: events}, nil
}

// Done reports whether every event in the script has been delivered, or the
// session ended early.
func (r *Replay) Done() bool {
	return r.done
}

// Step delivers the next scripted event to the session and returns the modal
// result. Once the script is exhausted or the session leaves ModalRunning,
// the replay is done and further calls return ModalRunning without touching
// the session.
func (r *Replay) Step(s *Session) ModalResult {
	if r.done || r.cursor >= len(r.events) {
		r.done = true
		return ModalRunning
	}

	ev := r.events[r.cursor]
	r.cursor++

	result := s.Modal(ev)
	if result != ModalRunning || r.cursor >= len(r.events) {
		r.done = true
	}
	return result
}

// Run delivers all remaining events, stopping early if the session ends.
// Returns the last modal result.
func (r *Replay) Run(s *Session) ModalResult {
	result := ModalRunning
	for !r.done {
		result = r.Step(s)
	}
	return result
}
