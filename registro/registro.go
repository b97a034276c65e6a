package registro

import (
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	api "github.com/dati/primos/api/v1"
)

// Registro es la estructura principal del historial de verificaciones.
// Contiene los segmentos y la configuración.
type Registro struct {
	mu sync.RWMutex // Mutex para proteger el acceso concurrente

	Dir    string // Directorio donde se almacenan los segmentos
	Config Config // Configuración del historial

	activeSegment *Segment   // Segmento activo actual
	segments      []*Segment // Lista de todos los segmentos
}

// NewRegistro crea una nueva instancia de Registro.
func NewRegistro(dir string, c Config) (*Registro, error) {
	if c.Segment.MaxStoreBytes == 0 {
		c.Segment.MaxStoreBytes = 1024 // Valor por defecto para MaxStoreBytes
	}
	if c.Segment.MaxIndexBytes == 0 {
		c.Segment.MaxIndexBytes = 1024 // Valor por defecto para MaxIndexBytes
	}
	r := &Registro{
		Dir:    dir,
		Config: c,
	}

	return r, r.setup() // Configura el historial y retorna la instancia
}

// setup inicializa el historial configurando los segmentos existentes.
func (r *Registro) setup() error {
	files, err := os.ReadDir(r.Dir) // Lee los archivos en el directorio
	if err != nil {
		return err
	}
	var baseOffsets []uint64
	for _, file := range files {
		offStr := strings.TrimSuffix(
			file.Name(),
			path.Ext(file.Name()),
		)
		off, _ := strconv.ParseUint(offStr, 10, 0) // Convierte el nombre del archivo a uint64
		baseOffsets = append(baseOffsets, off)     // Agrega el offset a la lista
	}
	sort.Slice(baseOffsets, func(i, j int) bool {
		return baseOffsets[i] < baseOffsets[j] // Ordena los offsets
	})
	for i := 0; i < len(baseOffsets); i++ {
		if err = r.NewSegment(baseOffsets[i]); err != nil {
			return err
		}
		// baseOffset contiene duplicados para índice y store, así que los saltamos
		i++
	}
	if r.segments == nil {
		if err = r.NewSegment(r.Config.Segment.InitialOffset); err != nil {
			return err
		}
	}
	return nil
}

// Append agrega una nueva verificación al segmento activo.
func (r *Registro) Append(verificacion *api.Verificacion) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	off, err := r.activeSegment.Append(verificacion) // Agrega la verificación al segmento activo
	if err != nil {
		return 0, err
	}
	if r.activeSegment.IsMaxed() { // Verifica si el segmento ha alcanzado su tamaño máximo
		err = r.NewSegment(off + 1) // Crea un nuevo segmento
	}
	return off, err
}

// Read lee una verificación del historial basado en el offset.
func (r *Registro) Read(off uint64) (*api.Verificacion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var s *Segment
	for _, segment := range r.segments {
		if segment.baseOffset <= off && off < segment.nextOffset {
			s = segment // Encuentra el segmento que contiene el offset
			break
		}
	}
	if s == nil || s.nextOffset <= off {
		return nil, api.ErrOffsetOutOfRange{Offset: off} // El offset está fuera de rango
	}
	return s.Read(off) // Lee la verificación del segmento
}

// NewSegment crea un nuevo segmento y lo agrega a la lista de segmentos.
func (r *Registro) NewSegment(off uint64) error {
	s, err := NewSegment(r.Dir, off, r.Config) // Crea un nuevo segmento
	if err != nil {
		return err
	}
	r.segments = append(r.segments, s) // Agrega el nuevo segmento a la lista
	r.activeSegment = s                // Establece el nuevo segmento como el activo
	return nil
}

// Close cierra todos los segmentos del historial.
func (r *Registro) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, segment := range r.segments {
		if err := segment.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Remove elimina todos los archivos del historial.
func (r *Registro) Remove() error {
	if err := r.Close(); err != nil {
		return err
	}
	return os.RemoveAll(r.Dir) // Elimina el directorio del historial
}

// Reset reinicia el historial eliminando todos los segmentos y configurándolos nuevamente.
func (r *Registro) Reset() error {
	if err := r.Remove(); err != nil {
		return err
	}
	return r.setup() // Configura nuevamente el historial
}

// LowestOffset retorna el offset más bajo en el historial.
func (r *Registro) LowestOffset() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.segments[0].baseOffset, nil // Retorna el offset base del primer segmento
}

// HighestOffset retorna el offset más alto en el historial.
func (r *Registro) HighestOffset() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	off := r.segments[len(r.segments)-1].nextOffset // Obtiene el siguiente offset del último segmento
	if off == 0 {
		return 0, nil
	}
	return off - 1, nil // Retorna el offset más alto
}

// Truncate elimina los segmentos cuyo offset es menor al especificado.
func (r *Registro) Truncate(lowest uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var segments []*Segment
	for _, s := range r.segments {
		if s.nextOffset <= lowest+1 {
			if err := s.Remove(); err != nil {
				return err
			}
			continue
		}
		segments = append(segments, s) // Mantiene los segmentos que no se eliminan
	}
	r.segments = segments
	return nil
}

// Reader retorna un lector que permite leer todos los datos del historial en orden.
func (r *Registro) Reader() io.Reader {
	r.mu.RLock()
	defer r.mu.RUnlock()
	readers := make([]io.Reader, len(r.segments))
	for i, segment := range r.segments {
		readers[i] = &originReader{segment.store, 0} // Crea un lector para cada segmento
	}
	return io.MultiReader(readers...) // Combina todos los lectores en uno solo
}

// originReader es un lector que lee desde el inicio del store.
type originReader struct {
	*Store
	off int64 // Offset actual del lector
}

// Read lee datos desde el store en el offset actual.
func (o *originReader) Read(p []byte) (int, error) {
	n, err := o.ReadAt(p, o.off) // Lee datos desde el offset actual
	o.off += int64(n)            // Actualiza el offset
	return n, err
}
