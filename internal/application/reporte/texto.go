package reporte

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone a NFD, elimina las marcas combinantes y
// recompone, de forma que "tapicería" y "tapiceria" coincidan.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarTexto pasa a minúsculas y elimina acentos para comparación.
func NormalizarTexto(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}

// coincideTexto busca la consulta ya normalizada como subcadena de alguno
// de los campos visibles.
func coincideTexto(consulta string, campos []string) bool {
	for _, c := range campos {
		if strings.Contains(NormalizarTexto(c), consulta) {
			return true
		}
	}
	return false
}
