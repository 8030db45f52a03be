package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Órdenes de trabajo y BOM.
	ErrInvalidTransition           = errors.New("transición de estado inválida")
	ErrDuplicateBOMEntry           = errors.New("el material ya está en el BOM de la máquina")
	ErrCannotDeleteActiveWorkOrder = errors.New("no se puede eliminar una orden de trabajo en progreso")
)
