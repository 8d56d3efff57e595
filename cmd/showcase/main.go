// Package main prints a styling sampler to the current terminal, using
// whatever color profile the environment reports.
package main

import (
	"fmt"

	"github.com/cinderlink/clikit"
)

func main() {
	caps := clikit.DetectCapabilities()
	r := clikit.NewRenderer(caps)

	fmt.Printf("terminal: %s\n\n", caps)

	title := clikit.NewStyle().
		Bold(true).
		Foreground(clikit.MustHex("#7D56F4")).
		Padding(clikit.EdgeSymmetric(0, 1))
	fmt.Println(r.Render("clikit showcase", title))

	box := clikit.NewStyle().
		BorderStyle(clikit.RoundedBorder()).
		BorderForeground(clikit.Cyan).
		Padding(clikit.EdgeSymmetric(1, 2)).
		Width(40).
		AlignHorizontal(clikit.AlignCenter)
	fmt.Println(r.Render("Borders, padding, and alignment\ncompose into boxes.", box))

	sunset := clikit.NewGradientStops(
		clikit.GradientStop{Position: 0, Color: clikit.MustHex("#FF6B6B")},
		clikit.GradientStop{Position: 0.5, Color: clikit.MustHex("#FFD93D")},
		clikit.GradientStop{Position: 1, Color: clikit.MustHex("#6BCB77")},
	).WithEasing(clikit.EaseInOut)
	gradient := clikit.NewStyle().ForegroundGradient(sunset)
	fmt.Println(r.Render("multi-stop gradients with easing", gradient))

	stats := r.CacheStats()
	fmt.Printf("\ncaches: %d sequences, %d widths\n", stats.Sequence.Len, stats.Width.Len)
}
