package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSVPrimaries(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float64
		h, s, v float64
	}{
		{"red", 255, 0, 0, 0, 1, 1},
		{"green", 0, 255, 0, 1.0 / 3, 1, 1},
		{"blue", 0, 0, 255, 2.0 / 3, 1, 1},
		{"yellow", 255, 255, 0, 1.0 / 6, 1, 1},
		{"white", 255, 255, 255, 0, 0, 1},
		{"black", 0, 0, 0, 0, 0, 0},
		{"mid gray", 128, 128, 128, 0, 0, 128.0 / 255},
	}
	for _, tc := range cases {
		h, s, v := RGBToHSV(tc.r, tc.g, tc.b)
		assert.InDelta(t, tc.h, h, 1e-9, "%s hue", tc.name)
		assert.InDelta(t, tc.s, s, 1e-9, "%s saturation", tc.name)
		assert.InDelta(t, tc.v, v, 1e-9, "%s value", tc.name)
	}
}

func TestRGBToHSVRange(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h, s, v := RGBToHSV(float64(r), float64(g), float64(b))
				assert.GreaterOrEqual(t, h, 0.0)
				assert.Less(t, h, 1.0)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 1.0)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestNeutrality(t *testing.T) {
	assert.InDelta(t, 1.0, Neutrality(180, 180, 180), 1e-9)
	assert.InDelta(t, 1.0-510.0/765.0, Neutrality(255, 0, 0), 1e-9)
	assert.Greater(t, Neutrality(200, 205, 210), Neutrality(200, 100, 50))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 1.0, Clamp01(42))
	assert.Equal(t, 0.25, Clamp01(0.25))
}
