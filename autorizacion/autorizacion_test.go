package autorizacion

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAutorizador(t *testing.T) {
	a := New("testdata/model.conf", "testdata/policy.csv")

	// El cliente tiene ambas acciones permitidas.
	require.NoError(t, a.Authorize("cliente", "*", "verificar"))
	require.NoError(t, a.Authorize("cliente", "*", "consultar"))

	// El sujeto anónimo solo puede verificar.
	require.NoError(t, a.Authorize("anonimo", "*", "verificar"))
	err := a.Authorize("anonimo", "*", "consultar")
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.PermissionDenied, st.Code())

	// Un sujeto sin política no puede hacer nada.
	err = a.Authorize("desconocido", "*", "verificar")
	require.Error(t, err)
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}
