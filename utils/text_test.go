package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Robótica", "robotica"},
		{"PEÑA Núñez", "pena nunez"},
		{"Àéîõü ç", "aeiou c"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizarTexto(tt.in))
		})
	}
}

func TestContieneNormalizado(t *testing.T) {
	assert.True(t, ContieneNormalizado("Visión Artificial", "vision"))
	assert.True(t, ContieneNormalizado("cualquier cosa", ""))
	assert.False(t, ContieneNormalizado("Química", "fisica"))
	assert.True(t, ContieneAlguno("perez", "Ana Ruiz", "José Pérez"))
	assert.False(t, ContieneAlguno("perez"))
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "José García López", FormatName("JOSÉ GARCÍA lópez"))
	assert.Equal(t, "Ana  Ruiz", FormatName("ana  ruiz"))
	assert.Equal(t, "", FormatName(""))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Visión & robótica", StripHTML("<p>Visión &amp; <b>robótica</b></p>"))
	assert.Equal(t, "", StripHTML(""))
}

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitTrim(" A ,, B ", ","))
	assert.Equal(t, []string{}, SplitTrim("  ", ","))
}
