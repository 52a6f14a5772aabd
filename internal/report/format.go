package report

import "fmt"

// formatPercent returns a percentage string for report output.
func formatPercent(answered, total int) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(answered)/float64(total)*100)
}
