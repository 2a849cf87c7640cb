package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindingFloat(t *testing.T) {
	tests := []struct {
		literal string
		want    float64
	}{
		{"1500.5", 1500.5},
		{" 20 ", 20},
		{"no numérico", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Infinity", 0},
		{"inf", 0},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			b := Binding{"grantNumber": {Type: "literal", Value: tt.literal}}
			assert.Equal(t, tt.want, b.Float("grantNumber"))
		})
	}
	assert.Zero(t, Binding{}.Float("grantNumber"))
}
