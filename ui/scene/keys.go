package scene

// Key codes follow raylib's KeyboardKey values (GLFW codes) so the ui
// package can pass them through unchanged.
const (
	KeySpace  int32 = 32
	KeyEscape int32 = 256
	KeyEnter  int32 = 257
	KeyTab    int32 = 258
	KeyRight  int32 = 262
	KeyLeft   int32 = 263
	KeyDown   int32 = 264
	KeyUp     int32 = 265
)

var keyNames = map[int32]string{
	KeySpace:  "space",
	KeyEscape: "Escape",
	KeyEnter:  "Return",
	KeyTab:    "Tab",
	KeyRight:  "Right",
	KeyLeft:   "Left",
	KeyDown:   "Down",
	KeyUp:     "Up",
}

// KeyName returns the name for a key code. Printable ASCII letters and
// digits map to themselves; unmapped codes report false.
func KeyName(code int32) (string, bool) {
	if name, ok := keyNames[code]; ok {
		return name, true
	}
	switch {
	case code >= 'A' && code <= 'Z':
		return string(rune(code - 'A' + 'a')), true
	case code >= '0' && code <= '9':
		return string(rune(code)), true
	}
	return "", false
}
