package chart

import (
	"strconv"
	"strings"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

// linePath renders a linear SVG path through the points in order.
func linePath(points []domain.Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}
