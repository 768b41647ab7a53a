package nav

import (
	"math"
	"strconv"
)

// The renderer writes Config onto <body> so the client tracks with the
// same constants the server was configured with.
const (
	HeaderHeightAttr   = "data-header-height"
	ProbeFractionAttr  = "data-probe-fraction"
	SolidThresholdAttr = "data-solid-threshold"
)

// Attrs returns c as name/value attribute pairs.
func (c Config) Attrs() [][2]string {
	return [][2]string{
		{HeaderHeightAttr, strconv.FormatFloat(c.HeaderHeight, 'f', -1, 64)},
		{ProbeFractionAttr, strconv.FormatFloat(c.ProbeFraction, 'f', -1, 64)},
		{SolidThresholdAttr, strconv.FormatFloat(c.SolidThreshold, 'f', -1, 64)},
	}
}

// ConfigFromAttrs reads a Config written by Attrs. Missing, malformed or
// out-of-range values keep their defaults: lengths must not be negative and
// the probe fraction must lie within [0, 1].
func ConfigFromAttrs(attr func(name string) (string, bool)) Config {
	c := DefaultConfig()
	readFloat(attr, HeaderHeightAttr, 0, math.MaxFloat64, &c.HeaderHeight)
	readFloat(attr, ProbeFractionAttr, 0, 1, &c.ProbeFraction)
	readFloat(attr, SolidThresholdAttr, 0, math.MaxFloat64, &c.SolidThreshold)
	return c
}

func readFloat(attr func(string) (string, bool), name string, lo, hi float64, dst *float64) {
	v, ok := attr(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < lo || f > hi {
		return
	}
	*dst = f
}
