package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	MaxSummaryWords = 120

	ellipsis = "..."
)

// IsValidSummary aceita um resumo externo somente se ele citar ao menos
// um valor calculado: topSku, topBranch, totalUnits ou a receita com 2 casas.
func IsValidSummary(text string, aggregates *domain.SalesAggregates) bool {
	text = strings.TrimSpace(text)
	if text == "" || aggregates == nil {
		return false
	}

	if len(strings.Fields(text)) > MaxSummaryWords {
		return false
	}

	if containsNonBlank(text, aggregates.TopSku) || containsNonBlank(text, aggregates.TopBranch) {
		return true
	}

	if strings.Contains(text, strconv.FormatInt(aggregates.TotalUnits, 10)) {
		return true
	}

	return strings.Contains(text, aggregates.FormattedRevenue())
}

func containsNonBlank(text string, value *string) bool {
	if value == nil || strings.TrimSpace(*value) == "" {
		return false
	}
	return strings.Contains(text, *value)
}

// BuildSimpleSummary monta o resumo determinístico usado como fallback
func BuildSimpleSummary(aggregates *domain.SalesAggregates) string {
	if aggregates == nil {
		aggregates = domain.NewSalesAggregates()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Se vendieron %d unidades en el periodo.", aggregates.TotalUnits)
	fmt.Fprintf(&b, " Ingresos totales: %s.", aggregates.FormattedRevenue())

	if aggregates.TopSku != nil && strings.TrimSpace(*aggregates.TopSku) != "" {
		fmt.Fprintf(&b, " SKU más vendido: %s.", *aggregates.TopSku)
	}

	if aggregates.TopBranch != nil && strings.TrimSpace(*aggregates.TopBranch) != "" {
		fmt.Fprintf(&b, " Sucursal destacada: %s.", *aggregates.TopBranch)
	}

	return truncateWords(b.String(), MaxSummaryWords)
}

// truncateWords mantém as primeiras max palavras e cola as reticências
// na última, assim o resultado continua com max palavras
func truncateWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return text
	}
	return strings.Join(words[:max], " ") + ellipsis
}

func EmailSubject(from, to time.Time) string {
	return fmt.Sprintf("Reporte Semanal Oreo - %s a %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
}

func EmailBody(summary string) string {
	return "Resumen:\n\n" + summary + "\n\nGracias."
}

// DayRange converte o intervalo de datas inclusivo em [from 00:00, to 23:59:59] UTC
func DayRange(fromDate, toDate time.Time) (time.Time, time.Time) {
	from := startOfDay(fromDate)
	to := startOfDay(toDate).AddDate(0, 0, 1).Add(-time.Second)
	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
