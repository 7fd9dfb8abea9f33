package analytics

import "sort"

// Funções puras sobre coleções já materializadas em memória, para quando o
// caller tem as linhas em mãos e não quer uma nova consulta. As linhas seguem
// o formato do executor: mapas com chaves minúsculas.

// GroupRowsByKey agrupa registros pela chave informada, preservando cada
// registro intacto e a ordem de inserção dentro de cada grupo. Não há
// garantia de ordem entre os grupos.
func GroupRowsByKey(rows []map[string]any, key string) map[any][]map[string]any {
	grouped := make(map[any][]map[string]any)
	for _, row := range rows {
		k := row[key]
		grouped[k] = append(grouped[k], row)
	}
	return grouped
}

// GroupSalesByStore agrupa vendas por store_id.
func GroupSalesByStore(sales []map[string]any) map[any][]map[string]any {
	return GroupRowsByKey(sales, "store_id")
}

// GroupSalesByChannel agrupa vendas por channel_id.
func GroupSalesByChannel(sales []map[string]any) map[any][]map[string]any {
	return GroupRowsByKey(sales, "channel_id")
}

// SumByKey soma os valores numéricos de uma chave em todos os registros.
func SumByKey(rows []map[string]any, key string) float64 {
	var total float64
	for _, row := range rows {
		total += toFloat(row[key])
	}
	return total
}

// TicketAverage calcula o ticket médio de vendas em memória (total_amount).
func TicketAverage(sales []map[string]any) float64 {
	if len(sales) == 0 {
		return 0
	}
	return SumByKey(sales, "total_amount") / float64(len(sales))
}

// ProductQuantity é uma linha do ranking em memória de itens vendidos.
type ProductQuantity struct {
	ProductID    any     `json:"product_id"`
	Name         string  `json:"name"`
	QuantitySold float64 `json:"quantity_sold"`
}

// TopSellingByQuantity retorna os topN produtos mais vendidos a partir de
// itens em memória. Cada item precisa de product_id e quantity; name é
// opcional. Empates mantêm a ordem de chegada.
func TopSellingByQuantity(items []map[string]any, topN int) []ProductQuantity {
	totals := make(map[any]float64)
	names := make(map[any]string)
	order := make([]any, 0)

	for _, item := range items {
		id, ok := item["product_id"]
		if !ok || id == nil {
			continue
		}
		if _, seen := totals[id]; !seen {
			order = append(order, id)
			if name, ok := item["name"].(string); ok {
				names[id] = name
			}
		}
		totals[id] += toFloat(item["quantity"])
	}

	ranked := make([]ProductQuantity, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, ProductQuantity{
			ProductID:    id,
			Name:         names[id],
			QuantitySold: totals[id],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func toFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return 0
	}
}
