package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale fixo do produto: português do Brasil com moeda BRL. Não é
// configurável pelo usuário.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor monetário em reais, ex: "R$ 1.234,56"
func FormatBRL(value float64) string {
	return printer.Sprintf("R$ %.2f", value)
}

// FormatRatio formata um múltiplo com sufixo "x", ex: "5,00x"
func FormatRatio(value float64) string {
	return printer.Sprintf("%.2fx", value)
}

// FormatPercent formata uma porcentagem com sufixo "%", ex: "74,0%"
func FormatPercent(value float64) string {
	return printer.Sprintf("%.1f%%", value)
}
