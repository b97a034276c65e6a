package main

import (
	"testing"

	"github.com/dati/primos/primos"
	"github.com/stretchr/testify/require"
)

func TestLimite(t *testing.T) {
	require.Equal(t, 100, limite)
}

func TestReporteDeReferencia(t *testing.T) {
	require.Equal(t,
		"Numerele prime până la 100 sunt: [2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97]",
		primos.Reporte(limite))
}
