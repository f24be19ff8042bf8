package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gnomegl/hourglass/internal/activity"
)

var headerColor = color.New(color.FgCyan, color.Bold)

var bucketColors = map[activity.Bucket]*color.Color{
	activity.Morning: color.New(color.FgGreen),
	activity.Daytime: color.New(color.FgBlue),
	activity.Evening: color.New(color.FgYellow),
	activity.Night:   color.New(color.FgRed),
}

// Preview writes the chart to a terminal with colored bars.
func Preview(w io.Writer, c activity.Counts, width int) error {
	lines, err := Lines(c, width)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	headerColor.Fprintf(w, "%s", Title(c))
	fmt.Fprintf(w, " (%d commits)\n", c.Total())

	for i, b := range activity.Buckets {
		line := lines[i]
		fmt.Fprintf(w, "%s %s %s %s\n",
			line.Label,
			line.Count,
			bucketColors[b].Sprint(line.Bar),
			color.WhiteString(line.Percent))
	}
	fmt.Fprintln(w)
	return nil
}
