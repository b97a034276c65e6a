package main

import (
	"fmt"

	"github.com/dati/primos/primos"
)

// Límite superior de la enumeración de referencia.
const limite = 100

func main() {
	// Imprimir la línea del reporte con todos los primos hasta el límite
	fmt.Println(primos.Reporte(limite))
}
