// Package clikit renders styled text for terminals.
//
// Users import this single package for the complete public API: colors and
// profiles, style values, borders, gradients, text layout, and the Renderer
// that turns (content, style) into byte-exact ANSI output.
//
// The box model, outermost first: margin → border → padding → aligned and
// wrapped content. Styles, colors, borders, and gradients are immutable
// values; every setter returns a new value.
package clikit
