package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"parbox.dev/parbox/bounds"
	"parbox.dev/parbox/geo"
	"parbox.dev/parbox/geojson"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

func computeOptions(cmd *cli.Command) computeSettings {
	return computeSettings{
		Options: bounds.Options{
			Threshold: cmd.Int("threshold"),
			Workers:   cmd.Int("workers"),
		},
		Quiet: cmd.Bool("quiet"),
	}
}

type computeSettings struct {
	bounds.Options
	Quiet bool
}

// computeFile parses the document and reduces it to a single box,
// timing the two phases separately.
func computeFile(path string, s computeSettings) error {
	start := time.Now()
	doc, err := geojson.ParseFile(path)
	if err != nil {
		return err
	}
	parsed := time.Now()

	box, err := bounds.Compute(doc, s.Options)
	if err != nil {
		return err
	}
	finished := time.Now()

	fmt.Println(renderBox(box))
	if !s.Quiet {
		fmt.Printf("time to parse: %fs\ntime to bbox: %fs\n",
			parsed.Sub(start).Seconds(),
			finished.Sub(parsed).Seconds(),
		)
	}
	return nil
}

func renderBox(b geo.Box) string {
	if b.IsEmpty() {
		return docStyle.Render("bbox: empty (no coordinates)")
	}
	return docStyle.Render(fmt.Sprintf(
		"xmin: %f\nymin: %f\nxmax: %f\nymax: %f",
		b.MinPos.Lon(),
		b.MinPos.Lat(),
		b.MaxPos.Lon(),
		b.MaxPos.Lat(),
	))
}
