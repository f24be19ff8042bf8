package display

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gnomegl/hourglass/internal/activity"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{2, 0},
		{2.5, 1},
		{33.3333, 7},
		{50, 11},
		{99.9, 21},
		{100, 21},
		{150, 21},
		{-5, 0},
	}

	for _, tt := range tests {
		bar := Bar(tt.percent, DefaultBarWidth)
		assert.Equal(t, DefaultBarWidth, utf8.RuneCountInString(bar), "percent %v", tt.percent)
		assert.Equal(t, tt.filled, strings.Count(bar, FilledGlyph), "percent %v", tt.percent)
		assert.Equal(t, DefaultBarWidth-tt.filled, strings.Count(bar, EmptyGlyph), "percent %v", tt.percent)
		assert.True(t, strings.HasPrefix(bar, strings.Repeat(FilledGlyph, tt.filled)))
	}
}

func TestBar_Monotonic(t *testing.T) {
	for _, width := range []int{1, 10, 21, 40} {
		prev := -1
		for p := 0.0; p <= 100.0; p += 0.25 {
			filled := FilledCells(p, width)
			assert.GreaterOrEqual(t, filled, prev, "width %d percent %v", width, p)
			prev = filled
		}
	}
}

func TestPercent_SumsToHundred(t *testing.T) {
	cases := []activity.Counts{
		{Morning: 5, Daytime: 5, Evening: 3, Night: 2},
		{Morning: 1, Daytime: 1, Evening: 1},
		{Morning: 7, Daytime: 13, Evening: 29, Night: 51},
		{Night: 4},
	}

	for _, c := range cases {
		var raw, formatted float64
		for _, b := range activity.Buckets {
			p := Percent(c.Get(b), c.Total())
			raw += p
			v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(FormatPercent(p), "%")), 64)
			require.NoError(t, err)
			formatted += v
		}
		assert.InDelta(t, 100.0, raw, 1e-9)
		assert.InDelta(t, 100.0, formatted, 0.1+1e-9)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "100.0%", FormatPercent(100))
	assert.Equal(t, " 33.3%", FormatPercent(100.0/3))
	assert.Equal(t, "  0.0%", FormatPercent(0))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name   string
		counts activity.Counts
		want   string
	}{
		{"day heavy", activity.Counts{Morning: 5, Daytime: 5, Evening: 3, Night: 2}, DayTitle},
		{"night heavy", activity.Counts{Morning: 1, Daytime: 1, Evening: 5, Night: 5}, NightTitle},
		{"tie", activity.Counts{Morning: 2, Daytime: 2, Evening: 1, Night: 3}, DayTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.counts))
		})
	}
}

func TestLines_Aligned(t *testing.T) {
	c := activity.Counts{Morning: 5, Daytime: 120, Evening: 3, Night: 2}

	lines, err := Lines(c, DefaultBarWidth)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	width := runewidth.StringWidth(lines[0].String())
	for i, line := range lines {
		assert.Equal(t, labelWidth, runewidth.StringWidth(line.Label), "line %d", i)
		assert.Len(t, line.Count, countWidth)
		assert.Len(t, line.Percent, 6)
		assert.Equal(t, width, runewidth.StringWidth(line.String()), "line %d", i)
	}
	assert.Equal(t, "  120 commits", lines[1].Count)
}

func TestRender(t *testing.T) {
	c := activity.Counts{Morning: 5, Daytime: 5, Evening: 3, Night: 2}

	chart, err := Render(c, DefaultBarWidth)
	require.NoError(t, err)

	rows := strings.Split(chart, "\n")
	require.Len(t, rows, 7)
	assert.Equal(t, "```text", rows[0])
	assert.Equal(t, DayTitle, rows[1])
	assert.Equal(t, "```", rows[6])

	wantMorning := "🌞 Morning" + " " + "    5 commits" + " " +
		strings.Repeat(FilledGlyph, 7) + strings.Repeat(EmptyGlyph, 14) + " " + " 33.3%"
	assert.Equal(t, wantMorning, rows[2])
	assert.True(t, strings.HasPrefix(rows[3], "🌆 Daytime"))
	assert.True(t, strings.HasPrefix(rows[4], "🌃 Evening"))
	assert.True(t, strings.HasPrefix(rows[5], "🌙 Night  "))
	assert.True(t, strings.HasSuffix(rows[5], " 13.3%"))
}

func TestRender_NoActivity(t *testing.T) {
	_, err := Render(activity.Counts{}, DefaultBarWidth)
	assert.ErrorIs(t, err, ErrNoActivity)

	var buf bytes.Buffer
	assert.ErrorIs(t, Preview(&buf, activity.Counts{}, DefaultBarWidth), ErrNoActivity)
	assert.Empty(t, buf.String())
}

func TestPreview(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	err := Preview(&buf, activity.Counts{Morning: 1, Daytime: 1, Evening: 5, Night: 5}, 10)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, NightTitle+" (12 commits)")
	assert.Contains(t, out, "🌃 Evening")
	assert.Contains(t, out, " 41.7%")
	assert.Contains(t, out, "  8.3%")
}
