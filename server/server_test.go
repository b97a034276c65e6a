package server

import (
	"context"
	"net"
	"os"
	"testing"

	api "github.com/dati/primos/api/v1"
	"github.com/dati/primos/autorizacion"
	"github.com/dati/primos/registro"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestServer(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T, client api.PrimosClient, config *Config){
		"verificar y consultar un candidato": testVerificarConsultar,
		"consultar un offset fuera de rango": testConsultarFueraDeRango,
		"verificar por stream bidireccional": testVerificarStream,
		"consultar el historial por stream":  testConsultarStream,
	} {
		t.Run(scenario, func(t *testing.T) {
			client, config, teardown := setupTest(t, nil)
			defer teardown()
			fn(t, client, config)
		})
	}
}

func setupTest(t *testing.T, fn func(*Config)) (client api.PrimosClient, cfg *Config, teardown func()) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	clientConn, err := grpc.Dial(
		l.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	dir, err := os.MkdirTemp("", "server-test")
	require.NoError(t, err)

	r, err := registro.NewRegistro(dir, registro.Config{})
	require.NoError(t, err)

	cfg = &Config{
		Registro: r,
	}
	if fn != nil {
		fn(cfg)
	}
	server, err := NewGRPCServer(cfg)
	require.NoError(t, err)

	go func() {
		server.Serve(l)
	}()

	client = api.NewPrimosClient(clientConn)

	return client, cfg, func() {
		server.Stop()
		clientConn.Close()
		l.Close()
		r.Remove()
	}
}

func testVerificarConsultar(t *testing.T, client api.PrimosClient, config *Config) {
	ctx := context.Background()

	primo, err := client.Verificar(ctx, &api.VerificarRequest{Candidato: 97})
	require.NoError(t, err)
	require.True(t, primo.Verificacion.EsPrimo)
	require.Equal(t, uint64(0), primo.Verificacion.Divisor)
	require.Equal(t, uint64(0), primo.Verificacion.Offset)

	compuesto, err := client.Verificar(ctx, &api.VerificarRequest{Candidato: 91})
	require.NoError(t, err)
	require.False(t, compuesto.Verificacion.EsPrimo)
	require.Equal(t, uint64(7), compuesto.Verificacion.Divisor)
	require.Equal(t, uint64(1), compuesto.Verificacion.Offset)

	consulta, err := client.Consultar(ctx, &api.ConsultarRequest{
		Offset: primo.Verificacion.Offset,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(97), consulta.Verificacion.Candidato)
	require.True(t, consulta.Verificacion.EsPrimo)
}

func testConsultarFueraDeRango(t *testing.T, client api.PrimosClient, config *Config) {
	ctx := context.Background()

	verificar, err := client.Verificar(ctx, &api.VerificarRequest{Candidato: 2})
	require.NoError(t, err)

	consulta, err := client.Consultar(ctx, &api.ConsultarRequest{
		Offset: verificar.Verificacion.Offset + 1,
	})
	require.Nil(t, consulta)
	got := status.Code(err)
	want := status.Code(api.ErrOffsetOutOfRange{}.GRPCStatus().Err())
	require.Equal(t, want, got)
}

func testVerificarStream(t *testing.T, client api.PrimosClient, config *Config) {
	ctx := context.Background()

	stream, err := client.VerificarStream(ctx)
	require.NoError(t, err)

	casos := []struct {
		candidato uint64
		esPrimo   bool
		divisor   uint64
	}{
		{candidato: 2, esPrimo: true},
		{candidato: 4, esPrimo: false, divisor: 2},
		{candidato: 97, esPrimo: true},
	}

	for offset, caso := range casos {
		err = stream.Send(&api.VerificarRequest{Candidato: caso.candidato})
		require.NoError(t, err)

		res, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, caso.candidato, res.Verificacion.Candidato)
		require.Equal(t, caso.esPrimo, res.Verificacion.EsPrimo)
		require.Equal(t, caso.divisor, res.Verificacion.Divisor)
		require.Equal(t, uint64(offset), res.Verificacion.Offset)
	}

	require.NoError(t, stream.CloseSend())
}

func testConsultarStream(t *testing.T, client api.PrimosClient, config *Config) {
	ctx := context.Background()

	candidatos := []uint64{2, 9, 89}
	for _, candidato := range candidatos {
		_, err := client.Verificar(ctx, &api.VerificarRequest{Candidato: candidato})
		require.NoError(t, err)
	}

	stream, err := client.ConsultarStream(ctx, &api.ConsultarRequest{Offset: 0})
	require.NoError(t, err)

	for i, candidato := range candidatos {
		res, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, candidato, res.Verificacion.Candidato)
		require.Equal(t, uint64(i), res.Verificacion.Offset)
	}
}

func TestAutorizacion(t *testing.T) {
	client, _, teardown := setupTest(t, func(cfg *Config) {
		cfg.Autorizador = autorizacion.New(
			"testdata/model.conf",
			"testdata/policy.csv",
		)
	})
	defer teardown()

	ctx := context.Background()

	// Sin metadatos la solicitud corre como el sujeto anónimo,
	// que puede verificar pero no consultar.
	verificar, err := client.Verificar(ctx, &api.VerificarRequest{Candidato: 89})
	require.NoError(t, err)
	require.True(t, verificar.Verificacion.EsPrimo)

	_, err = client.Consultar(ctx, &api.ConsultarRequest{Offset: 0})
	require.Error(t, err)
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	// Con el sujeto cliente en los metadatos ambas acciones proceden.
	ctxCliente := metadata.AppendToOutgoingContext(ctx, "sujeto", "cliente")
	_, err = client.Verificar(ctxCliente, &api.VerificarRequest{Candidato: 97})
	require.NoError(t, err)

	consulta, err := client.Consultar(ctxCliente, &api.ConsultarRequest{Offset: 0})
	require.NoError(t, err)
	require.Equal(t, uint64(89), consulta.Verificacion.Candidato)
}
