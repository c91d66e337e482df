package view

import (
	"github.com/soocke/retext/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// InitStyles activates the base theme and configures the semantic widget
// styles named in package theme.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(theme.ColorBg))

	StyleConfigure(theme.StylePrimaryButton,
		Background(theme.ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(theme.StyleDangerButton,
		Background(theme.ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(theme.StyleStateLabel,
		Foreground("white"),
		Background(theme.ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(theme.StyleMessageLabel,
		Foreground(theme.ColorText),
		Background(theme.ColorSurface),
		Padding("4p 2p"),
	)
	StyleConfigure(theme.StyleInfoLabel,
		Foreground(theme.ColorTextMuted),
		Background(theme.ColorSurface),
		Padding("4p 2p"),
	)
	StyleConfigure(theme.StyleErrorLabel,
		Foreground(theme.ColorDanger),
		Background(theme.ColorSurface),
		Padding("4p 2p"),
	)
}
