package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBudget(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		found bool
	}{
		{"bare number", `8000`, 8000, true},
		{"float", `7500.5`, 7500.5, true},
		{"numeric string", `"8000"`, 8000, true},
		{"min max object", `{"min": 3000, "max": 8000}`, 8000, true},
		{"min only", `{"min": 3000}`, 3000, true},
		{"string wrapping object", `"{\"min\": 2000, \"max\": 6000}"`, 6000, true},
		{"empty", ``, 0, false},
		{"null", `null`, 0, false},
		{"zero", `0`, 0, false},
		{"negative", `-100`, 0, false},
		{"empty object", `{}`, 0, false},
		{"garbage string", `"a lot"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := DecodeBudget(json.RawMessage(tt.raw))
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}
