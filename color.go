package quill

// Color identifies one of the nine colors addressable by a markup color
// letter. The numeric value of a Color is its base SGR foreground code;
// the background and bright-foreground codes are derived from it.
type Color uint8

// The nine colors, valued by base SGR foreground code.
const (
	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
	Default Color = 39
)

// colorFromLetter maps a markup color letter to its Color. ok is false
// for any byte outside {d, k, r, g, y, b, m, c, w}; unknown letters are
// never representable as a Color.
func colorFromLetter(c byte) (col Color, ok bool) {
	switch c {
	case 'd':
		return Default, true
	case 'k':
		return Black, true
	case 'r':
		return Red, true
	case 'g':
		return Green, true
	case 'y':
		return Yellow, true
	case 'b':
		return Blue, true
	case 'm':
		return Magenta, true
	case 'c':
		return Cyan, true
	case 'w':
		return White, true
	default:
		return 0, false
	}
}

// Letter returns the markup letter that selects the color.
func (c Color) Letter() byte {
	switch c {
	case Black:
		return 'k'
	case Red:
		return 'r'
	case Green:
		return 'g'
	case Yellow:
		return 'y'
	case Blue:
		return 'b'
	case Magenta:
		return 'm'
	case Cyan:
		return 'c'
	case White:
		return 'w'
	default:
		return 'd'
	}
}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "default"
	}
}

// fgCode returns the SGR code selecting c as the foreground color.
func (c Color) fgCode() int { return int(c) }

// fgBrightCode returns the SGR code selecting the high-intensity
// variant of c as the foreground color.
func (c Color) fgBrightCode() int { return int(c) + 60 }

// bgCode returns the SGR code selecting c as the background color.
// Background colors have no bright variant.
func (c Color) bgCode() int { return int(c) + 10 }
