package tui

import (
	"fmt"
	"math"
	"strings"

	"crimedash/internal/models"
)

// trendChart renders per-year counts as horizontal bars.
func trendChart(yearly []models.YearCount, width int) string {
	if len(yearly) == 0 {
		return emptyStyle.Render("no data for the current filters")
	}

	max := 0
	for _, yc := range yearly {
		if yc.Count > max {
			max = yc.Count
		}
	}
	if max == 0 {
		max = 1
	}
	barWidth := width - 22
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, yc := range yearly {
		n := yc.Count * barWidth / max
		if n == 0 && yc.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%4d", yc.Year)),
			barStyle.Render(strings.Repeat("█", n)),
			metricStyle.Render(formatInt(yc.Count)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// topTypesChart renders the top-k crime types as horizontal bars.
func topTypesChart(top []models.TypeCount, width int) string {
	if len(top) == 0 {
		return emptyStyle.Render("no data for the current filters")
	}

	maxLabel := 0
	for _, tc := range top {
		if len(tc.Type) > maxLabel {
			maxLabel = len(tc.Type)
		}
	}
	max := top[0].Count
	if max == 0 {
		max = 1
	}
	barWidth := width - maxLabel - 14
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, tc := range top {
		n := tc.Count * barWidth / max
		if n == 0 && tc.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", maxLabel, tc.Type)),
			topBarStyle.Render(strings.Repeat("█", n)),
			metricStyle.Render(formatInt(tc.Count)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Density ramp for the scatter grid, lightest to darkest.
var densityRamp = []rune("·░▒▓█")

// scatterChart bins the geo sample into a character grid. Each cell
// shades by how many points fall into it. Latitude grows upward.
func scatterChart(points []models.GeoPoint, width, height int) string {
	if len(points) == 0 {
		return emptyStyle.Render("no mappable rows for the current filters")
	}
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}
	latSpan := maxLat - minLat
	lonSpan := maxLon - minLon
	if latSpan == 0 {
		latSpan = 1e-9
	}
	if lonSpan == 0 {
		lonSpan = 1e-9
	}

	cells := make([]int, width*height)
	maxCell := 0
	for _, p := range points {
		x := int((p.Lon - minLon) / lonSpan * float64(width-1))
		y := int((maxLat - p.Lat) / latSpan * float64(height-1))
		cells[y*width+x]++
		if cells[y*width+x] > maxCell {
			maxCell = cells[y*width+x]
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if c == 0 {
				row[x] = ' '
				continue
			}
			// log scale keeps sparse cells visible next to hot ones
			level := int(math.Log1p(float64(c)) / math.Log1p(float64(maxCell)) * float64(len(densityRamp)-1))
			row[x] = densityRamp[level]
		}
		b.WriteString(scatterStyle.Render(string(row)))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s", labelStyle.Render(
		fmt.Sprintf("%s points · lat %.3f..%.3f · lon %.3f..%.3f",
			formatInt(len(points)), minLat, maxLat, minLon, maxLon)))
	return b.String()
}

// formatInt adds comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}
