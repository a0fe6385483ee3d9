package event

// Key identifies a logical key. Mapping from terminal bytes or backend key
// codes happens in the input package.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyForward
	KeyBack
	KeySpace
	KeyEscape
	KeyRestart
	KeyFullscreen
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:       "none",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyForward:    "up",
	KeyBack:       "down",
	KeySpace:      "space",
	KeyEscape:     "escape",
	KeyRestart:    "r",
	KeyFullscreen: "f",
	KeyQuit:       "q",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}
