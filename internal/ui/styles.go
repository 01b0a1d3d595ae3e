package ui

import (
	"github.com/charmbracelet/lipgloss"

	"carril-bici/internal/lanes"
)

// 报告与浏览界面共用的样式
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	lengthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff"))

	inServiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00"))

	otherStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffff00")).
				Italic(true)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginLeft(1)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#04B575"))
)

// statusStyle 默认状态显示为绿色，其它状态为黄色
func statusStyle(status string) lipgloss.Style {
	if status == lanes.DefaultStatus {
		return inServiceStyle
	}
	return otherStatusStyle
}
