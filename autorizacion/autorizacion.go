// Package autorizacion resuelve permisos con listas de control de acceso
// de Casbin (modelo + política en archivos).
package autorizacion

import (
	"fmt"

	"github.com/casbin/casbin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Autorizador envuelve el enforcer de Casbin.
type Autorizador struct {
	enforcer *casbin.Enforcer
}

// New crea un Autorizador a partir de los archivos de modelo y política.
func New(modelo, politica string) *Autorizador {
	enforcer := casbin.NewEnforcer(modelo, politica)
	return &Autorizador{
		enforcer: enforcer,
	}
}

// Authorize verifica si el sujeto puede ejecutar la acción sobre el objeto.
// Regresa un status PermissionDenied cuando la política lo niega.
func (a *Autorizador) Authorize(sujeto, objeto, accion string) error {
	if !a.enforcer.Enforce(sujeto, objeto, accion) {
		msg := fmt.Sprintf(
			"%s no tiene permiso de %s sobre %s",
			sujeto,
			accion,
			objeto,
		)
		st := status.New(codes.PermissionDenied, msg)
		return st.Err()
	}
	return nil
}
