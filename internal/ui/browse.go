package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carril-bici/internal/lanes"
	"carril-bici/internal/units"
)

// 表格最小列宽
const (
	minNameWidth   = 16
	minLengthWidth = 10
	minStatusWidth = 16
	chromeHeight   = 6 // 边框、合计与帮助行
)

// BrowseModel 是浏览路段的 Bubble Tea 模型
type BrowseModel struct {
	table    table.Model
	segments []lanes.Segment
	unit     string
	total    float64
	detail   string
	quitting bool
}

// NewBrowseModel 以注册表当前内容创建浏览模型
func NewBrowseModel(reg Segments, unit string) *BrowseModel {
	segments := reg.List()

	nameWidth, lengthWidth, statusWidth := minNameWidth, minLengthWidth, minStatusWidth
	rows := make([]table.Row, 0, len(segments))
	for _, seg := range segments {
		length := units.Format(seg.LengthKm, unit)
		nameWidth = max(nameWidth, lipgloss.Width(seg.Name))
		lengthWidth = max(lengthWidth, lipgloss.Width(length))
		statusWidth = max(statusWidth, lipgloss.Width(seg.Status))
		rows = append(rows, table.Row{seg.Name, length, seg.Status})
	}

	columns := []table.Column{
		{Title: "Tramo", Width: nameWidth},
		{Title: "Longitud", Width: lengthWidth},
		{Title: "Estado", Width: statusWidth},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#04B575")).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(rows), 1), 15)),
		table.WithStyles(styles),
	)

	return &BrowseModel{
		table:    t,
		segments: segments,
		unit:     unit,
		total:    reg.TotalLength(),
	}
}

// Init 初始化模型
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update 处理消息更新
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - chromeHeight; h > 0 {
			m.table.SetHeight(min(h, max(len(m.segments), 1)))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.detail = m.describeSelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View 渲染界面
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(lanes.ReportTitle) + "\n")
	sb.WriteString(tableBorderStyle.Render(m.table.View()) + "\n")
	sb.WriteString(totalStyle.Render("Longitud total: "+units.Format(m.total, m.unit)) + "\n")
	if m.detail != "" {
		sb.WriteString(m.detail + "\n")
	}
	sb.WriteString(helpStyle.Render("↑/↓ mover • enter detalle • q salir"))
	return sb.String()
}

// Selected 返回当前选中的路段
func (m *BrowseModel) Selected() (lanes.Segment, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.segments) {
		return lanes.Segment{}, false
	}
	return m.segments[i], true
}

// Detail 返回最近一次 enter 产生的详情文本
func (m *BrowseModel) Detail() string {
	return m.detail
}

func (m *BrowseModel) describeSelected() string {
	seg, ok := m.Selected()
	if !ok {
		return "Sin tramos registrados."
	}
	return fmt.Sprintf("%s · %s · %s",
		nameStyle.Render(seg.Name),
		units.Format(seg.LengthKm, m.unit),
		statusStyle(seg.Status).Render(seg.Status))
}
