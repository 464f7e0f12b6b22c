package utils

import (
	"strconv"
	"strings"
)

// ParseIntOrDefault converte um parâmetro de query; vazio retorna o padrão
func ParseIntOrDefault(value string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}
