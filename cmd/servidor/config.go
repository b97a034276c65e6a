package main

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config del servidor, leída de un archivo YAML.
type Config struct {
	GRPC struct {
		Addr string `yaml:"addr"` // Dirección del servidor gRPC
	} `yaml:"grpc"`
	HTTP struct {
		Addr string `yaml:"addr"` // Dirección del servidor HTTP
	} `yaml:"http"`
	Registro struct {
		Dir           string `yaml:"dir"`             // Directorio del historial
		MaxStoreBytes uint64 `yaml:"max_store_bytes"` // Tamaño máximo del store por segmento
		MaxIndexBytes uint64 `yaml:"max_index_bytes"` // Tamaño máximo del índice por segmento
	} `yaml:"registro"`
	Autorizacion struct {
		Habilitada bool   `yaml:"habilitada"` // Activa la autorización con Casbin
		Modelo     string `yaml:"modelo"`     // Archivo del modelo ACL
		Politica   string `yaml:"politica"`   // Archivo de la política ACL
	} `yaml:"autorizacion"`
}

// DefaultConfig regresa la configuración con los valores por defecto.
func DefaultConfig() Config {
	var c Config
	c.GRPC.Addr = ":8080"
	c.HTTP.Addr = ":8081"
	c.Registro.Dir = "/tmp/historial"
	return c
}

// CargarConfig lee la configuración del archivo indicado.
// Si el archivo no existe se usan los valores por defecto.
func CargarConfig(ruta string) (Config, error) {
	c := DefaultConfig()
	datos, err := os.ReadFile(ruta)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(datos, &c); err != nil {
		return c, err
	}
	return c, nil
}
