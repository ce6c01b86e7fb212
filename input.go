package marionette

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// trackedKeys lists the keyboard keys a blend session interprets, with the
// InputKind each maps to. Both Enter keys map to KindKeyReturn.
var trackedKeys = [...]struct {
	key  ebiten.Key
	kind InputKind
}{
	{ebiten.KeyEscape, KindKeyEscape},
	{ebiten.KeyEnter, KindKeyReturn},
	{ebiten.KeyNumpadEnter, KindKeyReturn},
	{ebiten.KeySpace, KindKeySpace},
	{ebiten.KeyTab, KindKeyTab},
	{ebiten.KeyF, KindKeyFlip},
}

// trackedButtons lists the mouse buttons a blend session interprets.
var trackedButtons = [...]struct {
	button ebiten.MouseButton
	kind   InputKind
}{
	{ebiten.MouseButtonLeft, KindButtonPrimary},
	{ebiten.MouseButtonRight, KindButtonSecondary},
}

// InputSource polls ebiten input state once per frame and emits normalized
// InputEvents: press/release edges for the tracked keys and buttons, and a
// pointer-move event whenever the cursor position changes. Create one per
// host loop and call Poll from Update.
type InputSource struct {
	prevKeys    [len(trackedKeys)]bool
	prevButtons [len(trackedButtons)]bool
	lastX       float64
	lastY       float64
	started     bool
}

// NewInputSource creates an input source with no recorded state; the first
// Poll establishes the baseline cursor position.
func NewInputSource() *InputSource {
	return &InputSource{}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Poll reads the current input state and appends the events since the last
// call to buf, returning the extended slice. Pointer motion is reported
// before press/release edges, so a session sees the factor update first.
func (s *InputSource) Poll(buf []InputEvent) []InputEvent {
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if !s.started {
		s.started = true
		s.lastX, s.lastY = x, y
	} else if x != s.lastX || y != s.lastY {
		buf = append(buf, InputEvent{
			Kind: KindPointerMove, Action: ActionNothing,
			X: x, Y: y, Modifiers: mods,
		})
		s.lastX, s.lastY = x, y
	}

	buf = s.pollButtons(buf, x, y, mods)
	buf = s.pollKeys(buf, x, y, mods)
	return buf
}

func (s *InputSource) pollButtons(buf []InputEvent, x, y float64, mods KeyModifiers) []InputEvent {
	for i, tb := range trackedButtons {
		cur := ebiten.IsMouseButtonPressed(tb.button)
		if cur == s.prevButtons[i] {
			continue
		}
		s.prevButtons[i] = cur
		action := ActionRelease
		if cur {
			action = ActionPress
		}
		buf = append(buf, InputEvent{
			Kind: tb.kind, Action: action,
			X: x, Y: y, Modifiers: mods,
		})
	}
	return buf
}

func (s *InputSource) pollKeys(buf []InputEvent, x, y float64, mods KeyModifiers) []InputEvent {
	for i, tk := range trackedKeys {
		cur := ebiten.IsKeyPressed(tk.key)
		if cur == s.prevKeys[i] {
			continue
		}
		s.prevKeys[i] = cur
		action := ActionRelease
		if cur {
			action = ActionPress
		}
		buf = append(buf, InputEvent{
			Kind: tk.kind, Action: action,
			X: x, Y: y, Modifiers: mods,
		})
	}
	return buf
}
