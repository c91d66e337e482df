// Package input decodes raw Tk key symbols into editor events. It is the only
// place that knows platform key names.
package input

import (
	"unicode/utf8"

	"github.com/soocke/retext/domain/editor"
)

// keysymChars maps X11 keysym names of printable ASCII to their character.
// Letters and digits are their own keysym and are handled separately.
var keysymChars = map[string]rune{
	"space":        ' ',
	"exclam":       '!',
	"quotedbl":     '"',
	"numbersign":   '#',
	"dollar":       '$',
	"percent":      '%',
	"ampersand":    '&',
	"apostrophe":   '\'',
	"quoteright":   '\'',
	"parenleft":    '(',
	"parenright":   ')',
	"asterisk":     '*',
	"plus":         '+',
	"comma":        ',',
	"minus":        '-',
	"period":       '.',
	"slash":        '/',
	"colon":        ':',
	"semicolon":    ';',
	"less":         '<',
	"equal":        '=',
	"greater":      '>',
	"question":     '?',
	"at":           '@',
	"bracketleft":  '[',
	"backslash":    '\\',
	"bracketright": ']',
	"asciicircum":  '^',
	"underscore":   '_',
	"grave":        '`',
	"quoteleft":    '`',
	"braceleft":    '{',
	"bar":          '|',
	"braceright":   '}',
	"asciitilde":   '~',
	"KP_Space":     ' ',
	"KP_Add":       '+',
	"KP_Subtract":  '-',
	"KP_Multiply":  '*',
	"KP_Divide":    '/',
	"KP_Decimal":   '.',
	"KP_Equal":     '=',
}

// DecodeKey turns a keysym into an editor event. Keys with no meaning for the
// editor (modifiers, arrows, function keys) report false.
func DecodeKey(keysym string) (editor.Event, bool) {
	switch keysym {
	case "Return", "KP_Enter":
		return editor.KeyEnter{}, true
	case "BackSpace":
		return editor.KeyBackspace{}, true
	case "Escape":
		return editor.KeyCommand{Cmd: editor.CmdQuit}, true
	}
	if r, ok := keysymChars[keysym]; ok {
		return editor.KeyChar{Char: r}, true
	}
	if len(keysym) == 4 && keysym[:3] == "KP_" && keysym[3] >= '0' && keysym[3] <= '9' {
		return editor.KeyChar{Char: rune(keysym[3])}, true
	}
	if r, size := utf8.DecodeRuneInString(keysym); size == len(keysym) && r != utf8.RuneError {
		return editor.KeyChar{Char: r}, true
	}
	return nil, false
}
