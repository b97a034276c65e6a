package registro

// Config contiene la configuración de los segmentos del historial,
// incluyendo el tamaño máximo permitido para el store y el índice.
type Config struct {
	Segment struct {
		MaxStoreBytes uint64 // Tamaño máximo permitido para el store
		MaxIndexBytes uint64 // Tamaño máximo permitido para el índice
		InitialOffset uint64 // Offset inicial
	}
}
