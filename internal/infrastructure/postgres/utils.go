package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea,
// por ejemplo una línea de venta que referencia un medicamento ya eliminado.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
