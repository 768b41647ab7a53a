package motion

import (
	"math"
	"strconv"
)

// Attribute names for Config as written onto <body> by the renderer.
const (
	MarginAttr   = "data-reveal-margin"
	DurationAttr = "data-reveal-duration"
	OffsetAttr   = "data-reveal-offset"
)

// Attrs returns c as name/value attribute pairs. Duration is in seconds.
func (c Config) Attrs() [][2]string {
	return [][2]string{
		{MarginAttr, formatFloat(c.Margin)},
		{DurationAttr, formatFloat(c.Duration.Seconds())},
		{OffsetAttr, formatFloat(c.Offset)},
	}
}

// ConfigFromAttrs reads a Config written by Attrs. Missing, malformed or
// negative values keep their defaults.
func ConfigFromAttrs(attr func(name string) (string, bool)) Config {
	c := DefaultConfig()
	if f, ok := readFloat(attr, MarginAttr); ok {
		c.Margin = f
	}
	if f, ok := readFloat(attr, DurationAttr); ok {
		c.Duration = Seconds(f)
	}
	if f, ok := readFloat(attr, OffsetAttr); ok {
		c.Offset = f
	}
	return c
}

func readFloat(attr func(string) (string, bool), name string) (float64, bool) {
	v, ok := attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}
