package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/ai-navigator/internal/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Score formats a composite score with thousands grouping.
func Score(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Priority formats a priority score, which is usually well below 1.
func Priority(v float64) string {
	return printer.Sprintf("%.4f", v)
}

// Percent formats a 0-100 score.
func Percent(v int) string {
	return printer.Sprintf("%d/100", v)
}

// DriverValue formats a slider value with its unit.
func DriverValue(d model.DriverSpec, v int) string {
	if d.Unit == "" {
		return printer.Sprintf("%d", v)
	}
	return printer.Sprintf("%d%s", v, d.Unit)
}
