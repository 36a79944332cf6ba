package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/lixenwraith/orrery/body"
)

const helpHint = "space run  1-0 !@ add  r random  tab select  n rename  C clear  q quit"

// headerLeft summarizes the system: "orrery • 3 bodies • Active • 1.5x"
func headerLeft(count int, simulating bool, speed float64) string {
	state := "Paused"
	if simulating {
		state = "Active"
	}
	return fmt.Sprintf("orrery • %s • %s • %sx",
		english.Plural(count, "body", "bodies"), state, humanize.FtoaWithDigits(speed, 1))
}

// headerRight is the customizer line for the selected body, or the key hint
func headerRight(b body.Body, selected bool, muted bool) string {
	if !selected {
		if muted {
			return helpHint + "  [muted]"
		}
		return helpHint
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", b.Name, b.Kind.Label())
	fmt.Fprintf(&sb, "  size %s", humanize.FtoaWithDigits(b.Radius, 1))
	fmt.Fprintf(&sb, "  orbit %s", humanize.Comma(int64(b.OrbitRadius+0.5)))
	fmt.Fprintf(&sb, "  ω %s", humanize.FtoaWithDigits(b.AngularSpeed, 4))
	fmt.Fprintf(&sb, "  mass %s", humanize.FtoaWithDigits(b.Mass, 1))
	if b.HasRings {
		sb.WriteString("  rings")
	}
	if b.Moons > 0 {
		fmt.Fprintf(&sb, "  %s", english.Plural(b.Moons, "moon", ""))
	}
	if b.Habitability != nil {
		fmt.Fprintf(&sb, "  hab %d%%", int(*b.Habitability*100+0.5))
	}
	fmt.Fprintf(&sb, "  %s", b.Color)
	return sb.String()
}

// renamePrompt replaces the customizer line while a name is being typed
func renamePrompt(text string) string {
	return "rename: " + text + "▏  enter ok  esc cancel"
}
