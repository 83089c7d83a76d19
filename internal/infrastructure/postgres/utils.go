package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
// Ocurre al borrar un registro maestro con dependientes (las FK usan ON DELETE RESTRICT)
// o al insertar con una referencia inexistente.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// orderClause arma "columna ASC|DESC" validando orderBy contra la lista blanca
// del repositorio. Un campo desconocido o vacío cae en def. Nunca se interpola
// entrada del usuario sin pasar por la lista blanca.
func orderClause(allowed map[string]string, orderBy, def string, asc bool) string {
	col, ok := allowed[orderBy]
	if !ok {
		col = def
	}
	dir := "DESC"
	if asc {
		dir = "ASC"
	}
	return col + " " + dir
}
