package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mojibakeReplacer maps UTF-8-as-Latin-1 sequences back to the accented
// characters used in Brazilian Portuguese. The bare "Ã" entry must come
// after the two-character sequences; the replacer tries patterns in
// argument order at each position.
var mojibakeReplacer = strings.NewReplacer(
	"Ã£", "ã",
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã§", "ç",
	"Ã¢", "â",
	"Ãª", "ê",
	"Ã´", "ô",
	"Ã¼", "ü",
	"Ã", "à",
)

// Repair substitutes known mojibake sequences and recomposes the result to
// NFC. Text without damage passes through unchanged.
func Repair(text string) string {
	if text == "" {
		return text
	}
	repaired := mojibakeReplacer.Replace(text)
	return norm.NFC.String(repaired)
}

// RepairCity repairs mojibake in a city name and trims surrounding space.
func RepairCity(city string) string {
	return strings.TrimSpace(Repair(city))
}
