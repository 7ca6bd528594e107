// Package stock evalúa niveles de inventario contra su mínimo configurado
// (servicio de dominio, funciones puras).
package stock

// EsBajoStock indica si un producto está en o por debajo de su mínimo.
// Un mínimo en nil desactiva la alerta para ese producto.
func EsBajoStock(actual int, minimo *int) bool {
	if minimo == nil {
		return false
	}
	return clampCero(actual) <= clampCero(*minimo)
}

// CantidadSugerida cantidad de pedido para reponer hasta el doble del mínimo:
// max(0, 2*minimo - actual). Sin mínimo configurado la sugerencia es 0.
func CantidadSugerida(actual int, minimo *int) int {
	if minimo == nil {
		return 0
	}
	s := 2*clampCero(*minimo) - clampCero(actual)
	if s < 0 {
		return 0
	}
	return s
}

// clampCero corrige valores negativos que pudieran llegar del backend;
// los stocks son no negativos por invariante.
func clampCero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
