package display

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gnomegl/hourglass/internal/activity"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultBarWidth = 21

	FilledGlyph = "█"
	EmptyGlyph  = "░"

	DayTitle   = "I'm an early 🐤"
	NightTitle = "I'm a night 🦉"

	labelWidth = 10
	countWidth = 13
)

var ErrNoActivity = errors.New("no commit activity to chart")

var labels = map[activity.Bucket]string{
	activity.Morning: "🌞 Morning",
	activity.Daytime: "🌆 Daytime",
	activity.Evening: "🌃 Evening",
	activity.Night:   "🌙 Night",
}

// ChartLine is one rendered row of the chart.
type ChartLine struct {
	Label   string
	Count   string
	Bar     string
	Percent string
}

func (l ChartLine) String() string {
	return strings.Join([]string{l.Label, l.Count, l.Bar, l.Percent}, " ")
}

func Label(b activity.Bucket) string {
	return labels[b]
}

// Percent assumes total > 0.
func Percent(count, total int) float64 {
	return float64(count) / float64(total) * 100
}

// FilledCells is the number of filled cells for percent on a bar of width cells.
func FilledCells(percent float64, width int) int {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled < 0 {
		return 0
	}
	if filled > width {
		return width
	}
	return filled
}

func Bar(percent float64, width int) string {
	filled := FilledCells(percent, width)
	return strings.Repeat(FilledGlyph, filled) + strings.Repeat(EmptyGlyph, width-filled)
}

func FormatPercent(percent float64) string {
	return fmt.Sprintf("%5.1f%%", percent)
}

func FormatLine(label string, count int, percent float64, width int) ChartLine {
	return ChartLine{
		Label:   runewidth.FillRight(label, labelWidth),
		Count:   fmt.Sprintf("%-*s", countWidth, fmt.Sprintf("%5d commits", count)),
		Bar:     Bar(percent, width),
		Percent: FormatPercent(percent),
	}
}

// Title ties go to the day side.
func Title(c activity.Counts) string {
	if c.NightSum() > c.DaySum() {
		return NightTitle
	}
	return DayTitle
}

// Lines renders one row per bucket in Morning, Daytime, Evening, Night order.
func Lines(c activity.Counts, width int) ([]ChartLine, error) {
	total := c.Total()
	if total == 0 {
		return nil, ErrNoActivity
	}

	lines := make([]ChartLine, 0, len(activity.Buckets))
	for _, b := range activity.Buckets {
		count := c.Get(b)
		lines = append(lines, FormatLine(Label(b), count, Percent(count, total), width))
	}
	return lines, nil
}

// Render produces the fenced chart block embedded in the README.
func Render(c activity.Counts, width int) (string, error) {
	lines, err := Lines(c, width)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("```text\n")
	sb.WriteString(Title(c))
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString(line.String())
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String(), nil
}
