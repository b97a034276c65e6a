package registro

import (
	"io"
	"os"
	"testing"

	api "github.com/dati/primos/api/v1"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestSegment(t *testing.T) {
	dir, err := os.MkdirTemp("", "segment-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	verificacion := &api.Verificacion{Candidato: 97, EsPrimo: true}

	c := Config{}
	c.Segment.MaxStoreBytes = 1024
	c.Segment.MaxIndexBytes = entWidth * 3

	s, err := NewSegment(dir, 16, c)
	require.NoError(t, err)
	require.Equal(t, uint64(16), s.nextOffset)
	require.False(t, s.IsMaxed())

	for i := uint64(0); i < 3; i++ {
		off, err := s.Append(verificacion)
		require.NoError(t, err)
		require.Equal(t, 16+i, off)

		got, err := s.Read(off)
		require.NoError(t, err)
		require.Equal(t, verificacion.Candidato, got.Candidato)
		require.Equal(t, verificacion.EsPrimo, got.EsPrimo)
		require.Equal(t, off, got.Offset)
	}

	_, err = s.Append(verificacion)
	require.Equal(t, io.EOF, err)

	// Lleno por el índice: solo caben tres entradas.
	require.True(t, s.IsMaxed())

	p, err := proto.Marshal(verificacion)
	require.NoError(t, err)
	c.Segment.MaxStoreBytes = uint64(len(p)+lenWidth) * 2
	c.Segment.MaxIndexBytes = 1024

	s, err = NewSegment(dir, 16, c)
	require.NoError(t, err)

	// Lleno por el store: las tres verificaciones previas exceden el máximo.
	require.True(t, s.IsMaxed())
	// El siguiente offset se recupera del índice al reabrir.
	require.Equal(t, uint64(19), s.nextOffset)

	err = s.Remove()
	require.NoError(t, err)
	s, err = NewSegment(dir, 16, c)
	require.NoError(t, err)
	require.False(t, s.IsMaxed())
	require.Equal(t, uint64(16), s.nextOffset)
}
