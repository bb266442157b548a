package scene

// Label is a single line of text, e.g. the score display.
type Label struct {
	text string
}

func NewLabel(text string) *Label {
	return &Label{text: text}
}

func (l *Label) SetText(s string) {
	l.text = s
}

func (l *Label) Text() string {
	return l.text
}

// Bounds is a screen rectangle in pixels.
type Bounds struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) is inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Button is a clickable control that does nothing while disabled.
type Button struct {
	Label   string
	Bounds  Bounds
	enabled bool
	onClick func()
}

func NewButton(label string, bounds Bounds, onClick func()) *Button {
	return &Button{Label: label, Bounds: bounds, onClick: onClick}
}

func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func (b *Button) Enabled() bool {
	return b.enabled
}

// OnClick replaces the click handler.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// Click fires the handler if the button is enabled and (x, y) is inside
// it. It reports whether the handler ran.
func (b *Button) Click(x, y int) bool {
	if !b.enabled || b.onClick == nil || !b.Bounds.Contains(x, y) {
		return false
	}
	b.onClick()
	return true
}
