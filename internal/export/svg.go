// Package export renders particle states to portable formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/lagsim/internal/particles"
)

// ScatterToSVG draws the group's x/y positions as an SVG scatter plot.
func ScatterToSVG(g *particles.Group, width, height int) (string, error) {
	x, err := g.Property("x")
	if err != nil {
		return "", err
	}
	y, err := g.Property("y")
	if err != nil {
		return "", err
	}
	if len(x) == 0 {
		return "", fmt.Errorf("group %q has no particles", g.Name())
	}

	// Find bounds
	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := range x {
		if x[i] < minX {
			minX = x[i]
		}
		if x[i] > maxX {
			maxX = x[i]
		}
		if y[i] < minY {
			minY = y[i]
		}
		if y[i] > maxY {
			maxY = y[i]
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for i := range x {
		cx := (x[i] - minX) / rangeX * float64(width)
		cy := float64(height) - (y[i]-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, cx, cy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String(), nil
}

// WriteScatterSVG renders the group and writes the SVG to path.
func WriteScatterSVG(g *particles.Group, path string, width, height int) error {
	svg, err := ScatterToSVG(g, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
