package service

import "errors"

// Sentinel errors shared across services so handlers can map them to HTTP
// status codes with errors.Is. Messages are user-facing.
var (
	// ErrReferenciaInvalida: the operation refers to an unknown operator,
	// account or transaction type.
	ErrReferenciaInvalida = errors.New("referencia desconocida: operador, cuenta o tipo de transacción")

	// ErrSinTurnoAbierto: a close or movement insert was attempted with no
	// turno abierto for the operator today.
	ErrSinTurnoAbierto = errors.New("no hay turno abierto para el operador hoy")

	// ErrTurnoYaAbierto: the operator already has a turno abierto today.
	ErrTurnoYaAbierto = errors.New("ya existe un turno abierto hoy para este operador")

	// ErrNoEditable: movements can only be edited or deleted on the calendar
	// day they were registered.
	ErrNoEditable = errors.New("el movimiento solo puede modificarse o eliminarse el día de su registro")

	// ErrYaCuadrado: an adjustment was requested with difference exactly
	// zero. A no-op signal, not a failure.
	ErrYaCuadrado = errors.New("el saldo ya cuadra, no se genera ajuste")

	// ErrMontoInvalido: amounts are stored as magnitudes; the sign lives in
	// the transaction type or the entrada/salida column, never in the monto.
	ErrMontoInvalido = errors.New("el monto debe ser mayor que cero")

	// ErrAlmacenNoDisponible: the store failed; no partial state was written
	// and no balance guess is returned. Financial writes are never retried
	// automatically.
	ErrAlmacenNoDisponible = errors.New("almacenamiento no disponible")
)
