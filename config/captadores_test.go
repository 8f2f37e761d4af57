package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCaptadorNames(t *testing.T) {
	names := GetCaptadorNames()
	assert.Equal(t, len(Captadores), len(names))
	assert.Contains(t, names, "Maikel Martinez")
	assert.Contains(t, names, "Marlon Castillo")
}

func TestIsKnownCaptador(t *testing.T) {
	tests := []struct {
		name     string
		captador string
		expected bool
	}{
		{name: "Roster member", captador: "Gabriel Cajina", expected: true},
		{name: "Unknown agent", captador: "Pedro Nadie", expected: false},
		{name: "Empty name", captador: "", expected: false},
		{name: "Case sensitive", captador: "gabriel cajina", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKnownCaptador(tt.captador))
		})
	}
}
