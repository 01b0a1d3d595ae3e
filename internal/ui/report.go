// Package ui 负责在终端中展示路段注册表：带样式的报告、
// 经 glamour 渲染的 Markdown 报告、表格列表以及交互式浏览界面。
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"carril-bici/internal/lanes"
	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/internal/units"
)

// Segments 是渲染所需的 lanes.Registry 只读接口
type Segments interface {
	List() []lanes.Segment
	TotalLength() float64
}

// RenderStyled 使用 lipgloss 样式渲染报告，长度按 unit 显示
func RenderStyled(reg Segments, unit string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(lanes.ReportTitle) + "\n")
	sb.WriteString(separatorStyle.Render(lanes.ReportSeparator) + "\n")
	for _, seg := range reg.List() {
		fmt.Fprintf(&sb, "- %s (%s): %s\n",
			nameStyle.Render(seg.Name),
			lengthStyle.Render(units.Format(seg.LengthKm, unit)),
			statusStyle(seg.Status).Render(seg.Status))
	}
	sb.WriteString(totalStyle.Render("Longitud total: "+units.Format(reg.TotalLength(), unit)) + "\n")
	return sb.String()
}

// BuildMarkdown 生成 Markdown 报告，每个路段一行表格
func BuildMarkdown(reg Segments, unit string) string {
	var sb strings.Builder
	sb.WriteString("# " + lanes.ReportTitle + "\n\n")

	list := reg.List()
	if len(list) == 0 {
		sb.WriteString("_Sin tramos registrados._\n\n")
	} else {
		sb.WriteString("| Tramo | Longitud | Estado |\n")
		sb.WriteString("|---|---:|---|\n")
		for _, seg := range list {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n",
				escapeCell(seg.Name), units.Format(seg.LengthKm, unit), escapeCell(seg.Status))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "**Longitud total:** %s\n", units.Format(reg.TotalLength(), unit))
	return sb.String()
}

// RenderMarkdown 通过 glamour 渲染 BuildMarkdown 的结果。
// style 为 glamour 标准样式名，"auto" 或空值时根据终端自动选择
func RenderMarkdown(reg Segments, unit, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrCodeRenderFailed, "创建Markdown渲染器失败", err)
	}

	out, err := renderer.Render(BuildMarkdown(reg, unit))
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrCodeRenderFailed, "渲染Markdown失败", err)
	}
	return out, nil
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

func escapeCell(s string) string {
	if s == "" {
		return " "
	}
	return cellEscaper.Replace(s)
}
