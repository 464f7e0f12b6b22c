package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD (UTC); string vazia retorna nil
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

// ParseDateTime aceita RFC3339 ou YYYY-MM-DD; string vazia retorna nil
func ParseDateTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		utc := t.UTC()
		return &utc, nil
	}

	return ParseDate(value)
}
