// Servidor de verificaciones: gRPC en primer plano y HTTP en una goroutine.

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/dati/primos/api"
	"github.com/dati/primos/autorizacion"
	"github.com/dati/primos/registro"
	"github.com/dati/primos/server"
)

func main() {
	ruta := flag.String("config", "config.yaml", "Archivo de configuración del servidor")
	flag.Parse()

	cfg, err := CargarConfig(*ruta)
	if err != nil {
		log.Fatalf("Error al leer la configuración: %v", err)
	}

	// Crear el directorio del historial si no existe
	if err := os.MkdirAll(cfg.Registro.Dir, 0755); err != nil {
		log.Fatalf("Error al crear el directorio del historial: %v", err)
	}

	// Crear el historial de verificaciones
	var rc registro.Config
	rc.Segment.MaxStoreBytes = cfg.Registro.MaxStoreBytes
	rc.Segment.MaxIndexBytes = cfg.Registro.MaxIndexBytes
	historial, err := registro.NewRegistro(cfg.Registro.Dir, rc)
	if err != nil {
		log.Fatalf("Error al inicializar el historial: %v", err)
	}

	// Autorización con Casbin, solo si está habilitada
	var aut *autorizacion.Autorizador
	if cfg.Autorizacion.Habilitada {
		aut = autorizacion.New(cfg.Autorizacion.Modelo, cfg.Autorizacion.Politica)
	}

	// Iniciar el servidor HTTP sobre el mismo historial
	httpSrv := api.NewServer(historial)
	go func() {
		fmt.Printf("Servidor HTTP escuchando en %s...\n", cfg.HTTP.Addr)
		log.Fatal(http.ListenAndServe(cfg.HTTP.Addr, httpSrv))
	}()

	// Escuchar en la dirección configurada para gRPC
	listener, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatalf("Error al iniciar el listener: %v", err)
	}

	// Inicializar el servidor gRPC
	grpcServer, err := server.NewGRPCServer(&server.Config{
		Registro:    historial,
		Autorizador: aut,
	})
	if err != nil {
		log.Fatalf("Error al inicializar el servidor gRPC: %v", err)
	}

	fmt.Printf("Servidor gRPC escuchando en %s...\n", cfg.GRPC.Addr)

	// Iniciar el servidor gRPC
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalf("Error al iniciar el servidor gRPC: %v", err)
	}
}
