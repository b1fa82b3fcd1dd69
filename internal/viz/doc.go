// Package viz renders a starfield in the terminal.
//
// Stars are plotted on a braille [Canvas] (2x4 dots per cell) through a
// [Surface], and a bubbletea [Model] runs the frame loop, routes mouse
// motion to the field's pointer, and draws a lipgloss status line with an
// optional asciigraph plot of links per frame.
//
// # Key Bindings
//
//	space   pause / resume
//	t       cycle theme
//	g       toggle links graph
//	?       help
//	q       quit
package viz
