package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	v1 "github.com/dati/primos/api/v1"
	"github.com/dati/primos/primos"
	"github.com/dati/primos/registro"

	"github.com/google/uuid" // Paquete uuid, nos ayuda a generar un id único
	"github.com/gorilla/mux" // Paquete mux, nos ayuda a manejar rutas
)

// Item representa una verificación hecha a través del API HTTP.
type Item struct {
	ID        uuid.UUID `json:"id"`        // ID único del item
	Candidato uint64    `json:"candidato"` // Número verificado
	EsPrimo   bool      `json:"es_primo"`  // Resultado de la verificación
	Divisor   uint64    `json:"divisor"`   // Primer divisor encontrado, 0 si es primo
	Offset    uint64    `json:"offset"`    // Offset asignado en el historial
}

// Servidor HTTP de verificaciones sobre el historial compartido.
type Server struct {
	*mux.Router // Agregar un router

	mu        sync.Mutex         // Protege la lista de verificaciones recientes
	registro  *registro.Registro // Historial de verificaciones
	recientes []Item             // Verificaciones hechas por este servidor
}

// NewServer crea el servidor HTTP sobre un historial ya inicializado.
func NewServer(r *registro.Registro) *Server {
	s := &Server{
		Router:    mux.NewRouter(),
		registro:  r,
		recientes: []Item{},
	}

	s.routes()
	return s
}

// routes configura las rutas HTTP que el servidor manejará.
func (s *Server) routes() {
	s.HandleFunc("/verificaciones", s.createVerificacion()).Methods(http.MethodPost)       // Verificar un candidato
	s.HandleFunc("/verificaciones", s.listVerificaciones()).Methods(http.MethodGet)        // Obtener las verificaciones recientes
	s.HandleFunc("/verificaciones/{id}", s.removeVerificacion()).Methods(http.MethodDelete) // Eliminar una verificación reciente
	s.HandleFunc("/historial/{offset}", s.readHistorial()).Methods(http.MethodGet)         // Leer el historial por offset
	s.HandleFunc("/primos", s.listPrimos()).Methods(http.MethodGet)                        // Enumerar los primos hasta un límite
}

// createVerificacion verifica el candidato recibido, lo agrega al historial
// y responde el item con su id y su offset.
func (s *Server) createVerificacion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var i Item // Los datos recibidos en la petición; solo se usa el candidato

		if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest) // Cuerpo inválido
			return
		}

		// Corre la división sucesiva y arma la verificación para el historial.
		esPrimo, divisor := primos.Divisor(int(i.Candidato))
		verificacion := &v1.Verificacion{
			Candidato: i.Candidato,
			EsPrimo:   esPrimo,
			Divisor:   uint64(divisor),
		}
		off, err := s.registro.Append(verificacion)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		i.ID = uuid.New() // Genera un nuevo UUID para el item
		i.EsPrimo = esPrimo
		i.Divisor = uint64(divisor)
		i.Offset = off

		s.mu.Lock()
		s.recientes = append(s.recientes, i) // Añade el item a la lista de recientes
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(i); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

// listVerificaciones responde la lista de verificaciones recientes.
func (s *Server) listVerificaciones() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		s.mu.Lock()
		recientes := s.recientes
		s.mu.Unlock()

		if err := json.NewEncoder(w).Encode(recientes); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

// removeVerificacion elimina una verificación reciente por su ID.
// El historial persistente no se modifica.
func (s *Server) removeVerificacion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr, _ := mux.Vars(r)["id"] // Obtiene el ID desde las variables de la URL

		id, err := uuid.Parse(idStr) // Convierte el ID de string a UUID
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		for i, item := range s.recientes {
			if item.ID == id {
				s.recientes = append(s.recientes[:i], s.recientes[i+1:]...) // Elimina el item de la lista
				break
			}
		}
		s.mu.Unlock()
	}
}

// readHistorial lee una verificación del historial por su offset.
func (s *Server) readHistorial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offStr, _ := mux.Vars(r)["offset"] // Obtiene el offset desde las variables de la URL

		off, err := strconv.ParseUint(offStr, 10, 64) // Convierte el offset de string a uint64
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		verificacion, err := s.registro.Read(off)
		if err != nil {
			if _, ok := err.(v1.ErrOffsetOutOfRange); ok { // Offset fuera del rango del historial
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(verificacion); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

// listPrimos enumera los primos hasta el límite pedido en la query,
// con el mismo formato de línea que imprime el programa principal.
func (s *Server) listPrimos() http.HandlerFunc {
	type respuesta struct {
		Hasta  int    `json:"hasta"`
		Primos []int  `json:"primos"`
		Linea  string `json:"linea"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		hasta := 100 // Límite por defecto de la enumeración
		if v := r.URL.Query().Get("hasta"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			hasta = n
		}

		w.Header().Set("Content-Type", "application/json")

		res := respuesta{
			Hasta:  hasta,
			Primos: primos.Hasta(hasta),
			Linea:  primos.Reporte(hasta),
		}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
