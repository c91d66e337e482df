// Package theme centralizes the palette shared by Tk widget styles and the
// overlays drawn onto the displayed image.
package theme

import (
	"fmt"
	"image/color"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, status bar
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Overlay colors drawn onto display frames, never onto the working image.
var (
	SelectionOutline = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	CaptionText      = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	CaptionBackdrop  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc8}
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleMessageLabel  = "message.TLabel"
	StyleInfoLabel     = "info.TLabel"
	StyleErrorLabel    = "error.TLabel"
)

// Hex formats c as a Tk color string.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
