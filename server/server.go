package server

import (
	"context"

	api "github.com/dati/primos/api/v1"
	"github.com/dati/primos/autorizacion"
	"github.com/dati/primos/primos"
	"github.com/dati/primos/registro"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Config agrupa las dependencias del servidor: el historial de verificaciones
// y, opcionalmente, el autorizador. Sin autorizador todas las solicitudes proceden.
type Config struct {
	Registro    *registro.Registro
	Autorizador *autorizacion.Autorizador
}

// Constantes de la política de acceso.
const (
	objetoComodin   = "*"         // Objeto comodín de la política
	accionVerificar = "verificar" // Acción de verificar un candidato
	accionConsultar = "consultar" // Acción de consultar el historial
	sujetoAnonimo   = "anonimo"   // Sujeto asignado cuando la solicitud no trae metadatos
)

// Verifica en tiempo de compilación que grpcServer implemente la interfaz api.PrimosServer
var _ api.PrimosServer = (*grpcServer)(nil)

// Define la estructura grpcServer
type grpcServer struct {
	api.UnimplementedPrimosServer // Embebe la implementación base del servidor de primos
	*Config
}

// newgrpcServer crea la instancia interna del servicio
func newgrpcServer(config *Config) (*grpcServer, error) {
	srv := &grpcServer{
		Config: config,
	}
	return srv, nil
}

// NewGRPCServer construye el servidor gRPC con los interceptores encadenados
// y registra el servicio de primos.
func NewGRPCServer(config *Config, grpcOpts ...grpc.ServerOption) (*grpc.Server, error) {
	grpcOpts = append(grpcOpts,
		grpc.StreamInterceptor(
			grpc_middleware.ChainStreamServer(
				grpc_auth.StreamServerInterceptor(authenticate),
			)),
		grpc.UnaryInterceptor(
			grpc_middleware.ChainUnaryServer(
				grpc_auth.UnaryServerInterceptor(authenticate),
			)),
	)
	gsrv := grpc.NewServer(grpcOpts...) // Crea el servidor gRPC con las opciones
	srv, err := newgrpcServer(config)
	if err != nil {
		return nil, err
	}
	api.RegisterPrimosServer(gsrv, srv) // Registra el servicio en el servidor
	return gsrv, nil
}

// Verificar atiende la verificación de un candidato: corre la división
// sucesiva, agrega el resultado al historial y lo regresa con su offset.
func (s *grpcServer) Verificar(ctx context.Context, req *api.VerificarRequest) (*api.VerificarResponse, error) {
	if err := s.authorize(sujeto(ctx), objetoComodin, accionVerificar); err != nil {
		return nil, err
	}

	// Los candidatos que exceden el rango de int se envuelven a negativo
	// y quedan como no primos.
	esPrimo, divisor := primos.Divisor(int(req.Candidato))
	verificacion := &api.Verificacion{
		Candidato: req.Candidato,
		EsPrimo:   esPrimo,
		Divisor:   uint64(divisor),
	}

	// Agrega la verificación al historial; Append asigna el offset.
	if _, err := s.Registro.Append(verificacion); err != nil {
		return nil, err
	}
	return &api.VerificarResponse{Verificacion: verificacion}, nil
}

// Consultar lee una verificación previa del historial por su offset
func (s *grpcServer) Consultar(ctx context.Context, req *api.ConsultarRequest) (*api.ConsultarResponse, error) {
	if err := s.authorize(sujeto(ctx), objetoComodin, accionConsultar); err != nil {
		return nil, err
	}
	verificacion, err := s.Registro.Read(req.Offset) // Lee la verificación del historial
	if err != nil {
		return nil, err // Fuera de rango llega al cliente como status 404
	}
	return &api.ConsultarResponse{Verificacion: verificacion}, nil
}

// VerificarStream maneja la verificación de una secuencia de candidatos
func (s *grpcServer) VerificarStream(stream api.Primos_VerificarStreamServer) error {
	for {
		req, err := stream.Recv() // Recibe una solicitud del stream
		if err != nil {
			return err
		}
		res, err := s.Verificar(stream.Context(), req) // Verifica el candidato
		if err != nil {
			return err
		}
		if err = stream.Send(res); err != nil { // Envía la respuesta al cliente
			return err
		}
	}
}

// ConsultarStream transmite el historial desde un offset en adelante.
// Cuando el offset rebasa el final, espera a que existan más verificaciones.
func (s *grpcServer) ConsultarStream(req *api.ConsultarRequest, stream api.Primos_ConsultarStreamServer) error {
	for {
		select {
		case <-stream.Context().Done(): // Verifica si el contexto del stream ha terminado
			return nil
		default:
			res, err := s.Consultar(stream.Context(), req) // Consulta la verificación
			switch err.(type) {
			case nil:
			case api.ErrOffsetOutOfRange: // Offset más allá del final del historial
				continue
			default:
				return err
			}
			if err = stream.Send(res); err != nil { // Envía la respuesta al cliente
				return err
			}
			req.Offset++ // Incrementa el offset para la siguiente verificación
		}
	}
}

// authorize consulta al autorizador configurado; sin autorizador no se
// restringe ninguna acción.
func (s *grpcServer) authorize(sujeto, objeto, accion string) error {
	if s.Autorizador == nil {
		return nil
	}
	return s.Autorizador.Authorize(sujeto, objeto, accion)
}

// authenticate extrae el sujeto de los metadatos de la solicitud y lo guarda
// en el contexto para que cada operación pueda autorizarse.
func authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return context.WithValue(ctx, sujetoContextKey{}, sujetoAnonimo), nil
	}
	values := md.Get("sujeto")
	if len(values) == 0 {
		return context.WithValue(ctx, sujetoContextKey{}, sujetoAnonimo), nil
	}
	return context.WithValue(ctx, sujetoContextKey{}, values[0]), nil
}

// sujeto regresa el sujeto autenticado guardado en el contexto.
func sujeto(ctx context.Context) string {
	return ctx.Value(sujetoContextKey{}).(string)
}

type sujetoContextKey struct{}
