package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDateClause_LimitesInclusivos(t *testing.T) {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	b := squirrel.Select("COUNT(*)").From("sales s")
	b = withDateClause(b, "s", "created_at", domain.MetricFilters{DateFrom: &from, DateTo: &to})

	query, args, err := b.PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "s.created_at >= $1")
	assert.Contains(t, query, "s.created_at <= $2")
	assert.Len(t, args, 2)
}

func TestWithDateClause_LimiteNuloNaoRestringe(t *testing.T) {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	b := squirrel.Select("COUNT(*)").From("sales s")
	b = withDateClause(b, "s", "created_at", domain.MetricFilters{DateFrom: &from})

	query, _, err := b.PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, ">=")
	assert.NotContains(t, query, "<=")
}

func TestRowsProbing_UsaPrimeiraCandidataAceita(t *testing.T) {
	fake := &fakeDB{
		missingCols: []string{"s.created_at", "s.sale_date"},
		respond: func(query string) *fakeResult {
			return &fakeResult{
				cols: []string{"Product_Name", "total"},
				rows: [][]driver.Value{{"X-Burger Clássico", float64(10)}},
			}
		},
	}

	p := prober{conn: fake.open()}
	base := squirrel.Select("s.product_name", "COUNT(*) AS total").From("sales s").GroupBy("s.product_name")

	out, err := p.rowsProbing(context.Background(), base, "s", dateFilters())
	require.NoError(t, err)
	require.Len(t, out, 1)

	// As chaves dos mapas são normalizadas para minúsculas
	assert.Equal(t, "X-Burger Clássico", out[0]["product_name"])
	assert.Equal(t, 10.0, asFloat(out[0]["total"]))

	queries := fake.executedQueries()
	require.Len(t, queries, 3)
	assert.Contains(t, queries[2], "s.date")
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "nil vale zero", input: nil, expected: 0},
		{name: "float64 direto", input: float64(12.5), expected: 12.5},
		{name: "int64 convertido", input: int64(7), expected: 7},
		{name: "NUMERIC chega como bytes", input: []byte("42.90"), expected: 42.90},
		{name: "string numérica", input: "3.14", expected: 3.14},
		{name: "bytes inválidos valem zero", input: []byte("abc"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, asFloat(tt.input))
		})
	}
}

func TestAsInt64Ptr(t *testing.T) {
	assert.Nil(t, asInt64Ptr(nil))
	assert.Nil(t, asInt64Ptr("abc"))

	v := asInt64Ptr(int64(9))
	require.NotNil(t, v)
	assert.Equal(t, int64(9), *v)

	v = asInt64Ptr([]byte("15"))
	require.NotNil(t, v)
	assert.Equal(t, int64(15), *v)
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "", asString(nil))
	assert.Equal(t, "abc", asString("abc"))
	assert.Equal(t, "2025-05-01", asString([]byte("2025-05-01")))
}
