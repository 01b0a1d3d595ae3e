package ui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"carril-bici/internal/units"
)

// 列表表格的单元格样式
var (
	listHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			Padding(0, 1)

	listCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderList 按插入顺序以 lipgloss 表格列出路段
func RenderList(reg Segments, unit string) string {
	list := reg.List()
	rows := make([][]string, 0, len(list))
	for _, seg := range list {
		rows = append(rows, []string{seg.Name, units.Format(seg.LengthKm, unit), seg.Status})
	}

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(separatorStyle).
		Headers("Tramo", "Longitud", "Estado").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return listHeaderStyle
			}
			if col == 2 && row >= 0 && row < len(list) {
				return statusStyle(list[row].Status).Padding(0, 1)
			}
			return listCellStyle
		})

	return t.String() + "\n"
}
