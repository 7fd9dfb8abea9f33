package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
)

// Colunas candidatas para o filtro de data nas tabelas de vendas. O schema de
// vendas varia entre implantações, então a coluna real é descoberta por
// tentativa, nesta ordem. A primeira aceita pelo banco encerra a sondagem.
var dateCandidates = []string{"created_at", "sale_date", "date", "order_date", "sold_at"}

// prober executa consultas de agregação sondando variações de schema.
// Erros de schema (coluna/relação inexistente) disparam a próxima candidata;
// qualquer outro erro interrompe a sondagem imediatamente.
type prober struct {
	conn postgres.Queryer
}

// withDateClause aplica os limites inclusivos usando exatamente a coluna
// informada. Limite nulo não impõe restrição naquele lado.
func withDateClause(b squirrel.SelectBuilder, alias, col string, f domain.MetricFilters) squirrel.SelectBuilder {
	qualified := alias + "." + col
	if f.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{qualified: *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{qualified: *f.DateTo})
	}
	return b
}

// scalar executa a consulta e devolve um único float. NULL vira 0.0.
func (p prober) scalar(ctx context.Context, b squirrel.SelectBuilder) (float64, error) {
	query, args, err := b.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var val sql.NullFloat64
	if err := p.conn.QueryRowContext(ctx, query, args...).Scan(&val); err != nil {
		return 0, err
	}

	if !val.Valid {
		return 0, nil
	}
	return val.Float64, nil
}

// rows executa a consulta e devolve as linhas como mapas com chaves
// minúsculas, para consumo insensível a maiúsculas no restante do código.
func (p prober) rows(ctx context.Context, b squirrel.SelectBuilder) ([]map[string]any, error) {
	query, args, err := b.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := p.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter colunas do resultado: %w", err)
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[strings.ToLower(col)] = values[i]
		}
		out = append(out, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scalarProbing tenta a consulta escalar com cada coluna de data candidata.
// Se todas falharem por schema, reexecuta sem filtro de data; se o fallback
// também falhar, propaga o primeiro erro de schema encontrado, que é o
// diagnóstico mais próximo da intenção original da consulta.
func (p prober) scalarProbing(ctx context.Context, base squirrel.SelectBuilder, alias string, f domain.MetricFilters) (float64, error) {
	var firstErr error

	for _, col := range dateCandidates {
		val, err := p.scalar(ctx, withDateClause(base, alias, col, f))
		if err == nil {
			return val, nil
		}
		if !postgres.IsSchemaError(err) {
			return 0, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	val, err := p.scalar(ctx, base)
	if err != nil {
		if firstErr != nil {
			return 0, firstErr
		}
		return 0, err
	}
	return val, nil
}

// rowsProbing é o equivalente de scalarProbing para consultas de linhas.
func (p prober) rowsProbing(ctx context.Context, base squirrel.SelectBuilder, alias string, f domain.MetricFilters) ([]map[string]any, error) {
	var firstErr error

	for _, col := range dateCandidates {
		out, err := p.rows(ctx, withDateClause(base, alias, col, f))
		if err == nil {
			return out, nil
		}
		if !postgres.IsSchemaError(err) {
			return nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	out, err := p.rows(ctx, base)
	if err != nil {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, err
	}
	return out, nil
}

// scalarWithChannel resolve a representação do canal antes de sondar as
// colunas de data. O schema pode guardar o canal como FK numérica
// (channel_id) ou como texto (channel); tenta-se a numérica primeiro e a
// textual só quando a primeira falha por schema. No pior caso são
// 2 x (5 candidatas + 1 fallback) = 12 tentativas.
func (p prober) scalarWithChannel(ctx context.Context, base squirrel.SelectBuilder, alias string, f domain.MetricFilters) (float64, error) {
	if f.Channel == "" {
		return p.scalarProbing(ctx, base, alias, f)
	}

	byID := base.Where(squirrel.Eq{alias + ".channel_id": f.Channel})
	val, err := p.scalarProbing(ctx, byID, alias, f)
	if err == nil {
		return val, nil
	}
	if !postgres.IsSchemaError(err) {
		return 0, err
	}

	byName := base.Where(squirrel.Eq{alias + ".channel": f.Channel})
	return p.scalarProbing(ctx, byName, alias, f)
}

// asFloat normaliza os tipos numéricos que os drivers devolvem (inclusive
// NUMERIC como []byte) para float64. Valores ausentes viram 0.
func asFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case []byte:
		f, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func asInt64Ptr(v any) *int64 {
	var n int64
	switch val := v.(type) {
	case int64:
		n = val
	case int32:
		n = int64(val)
	case float64:
		n = int64(val)
	case []byte:
		parsed, err := strconv.ParseInt(string(val), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	return &n
}
