package paradigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"puellA", "puellā"},
		{"amAvI", "amāvī"},
		{"rEx", "rēx"},
		{"amAtUrus", "amātūrus"},
		{"hYmnus", "hȳmnus"},
		{"dOnum", "dōnum"},
		{"~", "~"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.in), "Render(%q)", tt.in)
	}
}

func TestAtone(t *testing.T) {
	assert.Equal(t, "amaui", Atone("amāuī"))
	assert.Equal(t, "Roma", Atone("Rōma"))
	assert.Equal(t, "hymnus", Atone("hȳmnus"))
}

func TestDeramise(t *testing.T) {
	assert.Equal(t, "iuuenis", Deramise("juvenis"))
	assert.Equal(t, "Iulius", Deramise("Julius"))
	assert.Equal(t, "Uenus", Deramise("Venus"))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "amaui", Plain("amāvī"))
	assert.Equal(t, "iussit", Plain("jussit"))
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"trims", "  puella\t", "puella"},
		{"lower-cases", "AMO", "amo"},
		{"lower-cases marked", "\u0100", "\u0101"},
		{"composes combining macron", "a\u0304mo", "\u0101mo"},
		{"keeps precomposed", "amō", "amō"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.in))
		})
	}
}
