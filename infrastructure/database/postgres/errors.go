package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Códigos SQLSTATE que indicam que a consulta referencia um objeto que não
// existe no schema atual. 42883 entra na lista porque comparar um parâmetro
// textual com uma coluna numérica aparece como "operator does not exist".
const (
	codeUndefinedColumn   = "42703"
	codeUndefinedTable    = "42P01"
	codeUndefinedFunction = "42883"
)

// IsSchemaError informa se o erro é de schema (coluna/relação inexistente),
// em oposição a falhas de conectividade ou de dados. Só erros de schema podem
// ser contornados pela sondagem de colunas candidatas.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUndefinedColumn, codeUndefinedTable, codeUndefinedFunction:
			return true
		}
		return false
	}

	// Fallback textual para drivers que não expõem SQLSTATE (testes, proxies)
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "does not exist") {
		return false
	}
	return strings.Contains(msg, "column") ||
		strings.Contains(msg, "relation") ||
		strings.Contains(msg, "operator")
}
