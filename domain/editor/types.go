package editor

import (
	"image"
	"log/slog"

	"github.com/soocke/retext/domain/textfit"
)

// Mode is the interaction state of a session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSelecting
	ModeTyping
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeSelecting:
		return "Selecting"
	case ModeTyping:
		return "Typing"
	default:
		return "Unknown"
	}
}

// Command is a key command that is not text input.
type Command int

const (
	CmdType Command = iota + 1
	CmdReset
	CmdSave
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdType:
		return "type"
	case CmdReset:
		return "reset"
	case CmdSave:
		return "save"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is an input decoded at the platform boundary. Pointer coordinates are
// image pixels.
type Event interface{ isEvent() }

type (
	PointerDown  struct{ Pt image.Point }
	PointerMove  struct{ Pt image.Point }
	PointerUp    struct{ Pt image.Point }
	KeyChar      struct{ Char rune }
	KeyBackspace struct{}
	KeyEnter     struct{}
	KeyCommand   struct{ Cmd Command }
)

func (PointerDown) isEvent()  {}
func (PointerMove) isEvent()  {}
func (PointerUp) isEvent()    {}
func (KeyChar) isEvent()      {}
func (KeyBackspace) isEvent() {}
func (KeyEnter) isEvent()     {}
func (KeyCommand) isEvent()   {}

// Printable range accepted as pending text.
const (
	FirstPrintable = 0x20
	LastPrintable  = 0x7e
)

// IsPrintable reports whether r may be appended to the pending text.
func IsPrintable(r rune) bool { return r >= FirstPrintable && r <= LastPrintable }

// DefaultKeymap maps command characters, honored outside typing mode.
var DefaultKeymap = map[rune]Command{
	't': CmdType,
	'r': CmdReset,
	's': CmdSave,
	'q': CmdQuit,
}

// Renderer replaces the selected region of dst with fitted text.
type Renderer interface {
	Replace(dst *image.NRGBA, sel textfit.Selection, text string) (textfit.Placement, bool, error)
}

// Callbacks are side effects the session triggers but does not own.
type Callbacks struct {
	Save func(img *image.NRGBA) (string, error)
	Quit func()
}

// ModeListener is notified after every mode transition.
type ModeListener func(prev, next Mode)

// MessageListener receives user-facing messages.
type MessageListener func(level slog.Level, msg string)
