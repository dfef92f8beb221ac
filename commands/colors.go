package commands

import (
	"github.com/mgutz/ansi"

	"github.com/passcheck/passcheck/strength"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")

func verdictColor(verdict strength.Verdict) func(string) string {
	switch verdict {
	case strength.Strong, strength.VeryStrong:
		return green
	case strength.Moderate:
		return yellow
	default:
		return red
	}
}
