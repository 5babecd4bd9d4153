package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tiresim/internal/storage"
)

// TraceToSVG renders a stored run trace as an SVG polyline, time on
// the horizontal axis.
func TraceToSVG(trace *storage.Trace, width, height int, strokeColor string) string {
	if trace == nil || len(trace.Values) < 2 {
		return ""
	}

	minT, maxT := trace.Times[0], trace.Times[len(trace.Times)-1]
	minV, maxV := trace.Values[0], trace.Values[0]
	for _, v := range trace.Values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range trace.Values {
		x := (trace.Times[i] - minT) / rangeT * float64(width)
		y := float64(height) - (trace.Values[i]-minV)/rangeV*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
