// Package primos implementa la verificación de números primos por división
// sucesiva y el reporte de todos los primos hasta un límite dado.
package primos

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Divisor verifica si n es primo probando divisores por división sucesiva.
// Además de la respuesta reporta el primer divisor propio encontrado, o 0
// cuando no existe. Los valores menores o iguales a 1 no son primos.
func Divisor(n int) (bool, int) {
	if n <= 1 {
		return false, 0
	}
	// La cota superior es la raíz cuadrada de n truncada a entero,
	// calculada como la potencia n**0.5 en punto flotante.
	limite := int(math.Pow(float64(n), 0.5))
	for i := 2; i <= limite; i++ {
		if n%i == 0 {
			return false, i // Primer divisor encontrado: n no es primo.
		}
	}
	return true, 0
}

// EsPrimo indica si n es un número primo.
func EsPrimo(n int) bool {
	esPrimo, _ := Divisor(n)
	return esPrimo
}

// Hasta recorre los enteros desde 1 hasta limite inclusive y regresa,
// en orden ascendente, los que resultan primos.
func Hasta(limite int) []int {
	primos := []int{}
	for n := 1; n <= limite; n++ {
		if EsPrimo(n) {
			primos = append(primos, n)
		}
	}
	return primos
}

// Lista da formato textual a una lista de primos: los valores separados por
// coma y espacio, entre corchetes.
func Lista(primos []int) string {
	partes := make([]string, len(primos))
	for i, p := range primos {
		partes[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(partes, ", ") + "]"
}

// Reporte construye la línea completa del reporte para un límite dado.
func Reporte(limite int) string {
	return fmt.Sprintf("Numerele prime până la %d sunt: %s", limite, Lista(Hasta(limite)))
}
