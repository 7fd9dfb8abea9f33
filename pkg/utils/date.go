package utils

import "time"

// ParseDate converte uma data YYYY-MM-DD em *time.Time.
// String vazia significa "sem limite" e retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
