package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func attrMap(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestConfigAttrsRoundTrip(t *testing.T) {
	c := Config{HeaderHeight: 72, ProbeFraction: 0.5, SolidThreshold: 0}
	m := map[string]string{}
	for _, kv := range c.Attrs() {
		m[kv[0]] = kv[1]
	}
	assert.Equal(t, c, ConfigFromAttrs(attrMap(m)))
}

func TestConfigFromAttrsKeepsDefaultsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
	}{
		{"missing", map[string]string{}},
		{"malformed", map[string]string{HeaderHeightAttr: "tall", ProbeFractionAttr: "", SolidThresholdAttr: "8px"}},
		{"negative", map[string]string{HeaderHeightAttr: "-64", SolidThresholdAttr: "-1"}},
		{"fraction above one", map[string]string{ProbeFractionAttr: "1.5"}},
		{"fraction below zero", map[string]string{ProbeFractionAttr: "-0.1"}},
		{"not a number", map[string]string{HeaderHeightAttr: "NaN", ProbeFractionAttr: "NaN", SolidThresholdAttr: "NaN"}},
		{"infinite", map[string]string{HeaderHeightAttr: "+Inf", SolidThresholdAttr: "Inf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DefaultConfig(), ConfigFromAttrs(attrMap(tt.attrs)))
		})
	}
}

func TestConfigFromAttrsAcceptsBounds(t *testing.T) {
	c := ConfigFromAttrs(attrMap(map[string]string{
		HeaderHeightAttr:   "0",
		ProbeFractionAttr:  "1",
		SolidThresholdAttr: "0",
	}))
	assert.Equal(t, Config{HeaderHeight: 0, ProbeFraction: 1, SolidThreshold: 0}, c)
}
