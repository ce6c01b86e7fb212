package marionette

// InputKind identifies which input a normalized event came from. The set
// covers exactly what an interactive blend session interprets; hosts with
// richer input vocabularies map down to these.
type InputKind uint8

const (
	KindNone            InputKind = iota
	KindPointerMove               // pointer motion; X/Y carry the position
	KindButtonPrimary             // primary (left) mouse button
	KindButtonSecondary           // secondary (right) mouse button
	KindKeyEscape                 // Escape
	KindKeyReturn                 // Return / numpad Enter
	KindKeySpace                  // Space
	KindKeyTab                    // Tab
	KindKeyFlip                   // F
)

// InputAction is the value of an input event.
type InputAction uint8

const (
	ActionNothing InputAction = iota // no press/release edge (e.g. pointer move)
	ActionPress
	ActionRelease
)

// InputEvent is one normalized input event delivered to a modal session.
type InputEvent struct {
	Kind      InputKind
	Action    InputAction
	X, Y      float64
	Modifiers KeyModifiers
}
