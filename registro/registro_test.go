package registro

import (
	"io"
	"os"
	"testing"

	api "github.com/dati/primos/api/v1"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestRegistro(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T, r *Registro){
		"agregar y leer una verificacion": testAppendRead,
		"offset fuera de rango":           testOutOfRangeErr,
		"recuperar el estado existente":   testInitExisting,
		"lector del historial completo":   testReader,
		"truncar segmentos viejos":        testTruncate,
	} {
		t.Run(scenario, func(t *testing.T) {
			dir, err := os.MkdirTemp("", "registro-test")
			require.NoError(t, err)
			defer os.RemoveAll(dir)

			c := Config{}
			c.Segment.MaxStoreBytes = 32
			r, err := NewRegistro(dir, c)
			require.NoError(t, err)

			fn(t, r)
		})
	}
}

func testAppendRead(t *testing.T, r *Registro) {
	verificacion := &api.Verificacion{Candidato: 97, EsPrimo: true}
	off, err := r.Append(verificacion)
	require.NoError(t, err)
	require.Equal(t, uint64(0), off)

	leida, err := r.Read(off)
	require.NoError(t, err)
	require.Equal(t, verificacion.Candidato, leida.Candidato)
	require.Equal(t, verificacion.EsPrimo, leida.EsPrimo)
}

func testOutOfRangeErr(t *testing.T, r *Registro) {
	leida, err := r.Read(1)
	require.Nil(t, leida)
	apiErr := err.(api.ErrOffsetOutOfRange)
	require.Equal(t, uint64(1), apiErr.Offset)
}

func testInitExisting(t *testing.T, r *Registro) {
	verificacion := &api.Verificacion{Candidato: 89, EsPrimo: true}
	for i := 0; i < 3; i++ {
		_, err := r.Append(verificacion)
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	off, err := r.LowestOffset()
	require.NoError(t, err)
	require.Equal(t, uint64(0), off)
	off, err = r.HighestOffset()
	require.NoError(t, err)
	require.Equal(t, uint64(2), off)

	// Una nueva instancia sobre el mismo directorio recupera los offsets.
	n, err := NewRegistro(r.Dir, r.Config)
	require.NoError(t, err)

	off, err = n.LowestOffset()
	require.NoError(t, err)
	require.Equal(t, uint64(0), off)
	off, err = n.HighestOffset()
	require.NoError(t, err)
	require.Equal(t, uint64(2), off)
}

func testReader(t *testing.T, r *Registro) {
	verificacion := &api.Verificacion{Candidato: 97, EsPrimo: true}
	off, err := r.Append(verificacion)
	require.NoError(t, err)
	require.Equal(t, uint64(0), off)

	reader := r.Reader()
	b, err := io.ReadAll(reader)
	require.NoError(t, err)

	// Cada registro del store lleva un prefijo con su tamaño.
	leida := &api.Verificacion{}
	err = proto.Unmarshal(b[lenWidth:], leida)
	require.NoError(t, err)
	require.Equal(t, verificacion.Candidato, leida.Candidato)
}

func testTruncate(t *testing.T, r *Registro) {
	// El primo más grande que cabe en 64 bits: su varint ocupa diez bytes,
	// con lo que cada segmento se llena tras un par de verificaciones.
	verificacion := &api.Verificacion{Candidato: 18446744073709551557, EsPrimo: true}
	for i := 0; i < 3; i++ {
		_, err := r.Append(verificacion)
		require.NoError(t, err)
	}

	err := r.Truncate(1)
	require.NoError(t, err)

	_, err = r.Read(0)
	require.Error(t, err)

	// Las verificaciones posteriores al corte siguen disponibles.
	leida, err := r.Read(2)
	require.NoError(t, err)
	require.Equal(t, verificacion.Candidato, leida.Candidato)
}
