package lanes

import (
	"strings"

	"carril-bici/internal/units"
)

// Report header lines.
const (
	ReportTitle     = "INFORME DE CARRILES BICI - Bahía de Cádiz"
	ReportSeparator = "==========================================="
)

// Report renders every segment in insertion order:
//
//	INFORME DE CARRILES BICI - Bahía de Cádiz
//	===========================================
//	- Paseo Marítimo (3.5 km): En servicio
//	Longitud total: 3.5 km
func (r *Registry) Report() string {
	list := r.segments.List()

	var sb strings.Builder
	sb.WriteString(ReportTitle + "\n")
	sb.WriteString(ReportSeparator + "\n")
	for _, seg := range list {
		sb.WriteString("- " + seg.Name + " (" + units.FormatKm(seg.LengthKm) + " km): " + seg.Status + "\n")
	}
	sb.WriteString("Longitud total: " + units.FormatKm(sumLengths(list)) + " km\n")
	return sb.String()
}
