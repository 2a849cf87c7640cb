package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV([]string{"Nombre"}, nil))
	assert.Nil(t, CSV([]string{"Nombre"}, [][]string{}))

	got := string(CSV([]string{"Título", "Año"}, [][]string{
		{`Visión "artificial"`, "2021"},
		{"Redes, sensores", ""},
	}))
	assert.Equal(t, "\ufeffTítulo,Año\n"+
		`"Visión ""artificial""","2021"`+"\n"+
		`"Redes, sensores",""`+"\n", got)
}

func TestSanitizarNombreArchivo(t *testing.T) {
	tests := []struct {
		in, sep, want string
	}{
		{"Ana López", "_", "Ana_López"},
		{"  Ana   López ", "", "AnaLópez"},
		{`a/b\c:d*e?f"g<h>i|j`, "_", "abcdefghij"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizarNombreArchivo(tt.in, tt.sep))
		})
	}
}
