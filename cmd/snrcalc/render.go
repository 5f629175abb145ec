package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/observe/request"
	"github.com/cwbudde/algo-etc/observe/sweep"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type column struct {
	title string
	width int
}

var columns = []column{
	{"t [s]", 10},
	{"total [s]", 11},
	{"SNR", 10},
	{"object [ADU]", 14},
	{"sky [ADU]", 12},
	{"saturated", 10},
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).Align(lipgloss.Right).Render(s)
}

func renderReport(req request.Request, rep sweep.Report) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s  %s source  mag %.2f", strings.ToUpper(rep.Operation), req.Band, req.Source, req.Magnitude)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("template %s  seeing %.2f\"  airmass %.2f  run %s",
		req.Template.Name(), req.Seeing, req.Airmass, rep.ID)))
	b.WriteString("\n\n")

	width := 0
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = cell(c.title, c.width, headerStyle)
		width += c.width
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	for _, r := range rep.Results {
		style, sat := valueStyle, "no"
		if r.Saturated {
			style, sat = warnStyle, "yes"
		}
		row := []string{
			cell(fmt.Sprintf("%.1f", r.ExposureTime), columns[0].width, style),
			cell(fmt.Sprintf("%.1f", r.TotalTime), columns[1].width, style),
			cell(fmt.Sprintf("%.2f", r.SNR), columns[2].width, style),
			cell(fmt.Sprintf("%.4g", r.ObjectSignal), columns[3].width, style),
			cell(fmt.Sprintf("%.4g", r.SkySignal), columns[4].width, style),
			cell(sat, columns[5].width, style),
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	if len(rep.Results) > 0 && rep.Results[0].Spectral != nil {
		s := rep.Results[0].Spectral
		b.WriteString("\n")
		for _, kv := range [][2]string{
			{"central wavelength", fmt.Sprintf("%.4f µm", s.CentralWavelength)},
			{"dispersion", fmt.Sprintf("%.3e µm/pixel", s.Dispersion)},
			{"resolution element", fmt.Sprintf("%.3e µm", s.ResolutionElement)},
			{"resolving power", fmt.Sprintf("%.0f", s.ResolvingPower)},
			{"slit throughput", fmt.Sprintf("%.3f", s.SlitFraction)},
			{"coverage", fmt.Sprintf("%.4f - %.4f µm", s.CoverageMin, s.CoverageMax)},
		} {
			b.WriteString(labelStyle.Width(20).Render(kv[0]))
			b.WriteString(valueStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderCatalog(store *curve.Store) string {
	var b strings.Builder
	for _, section := range []struct {
		name string
		ids  []string
	}{
		{"filters", store.Filters()},
		{"grisms", store.Grisms()},
		{"models", store.Models()},
	} {
		b.WriteString(labelStyle.Width(10).Render(section.name))
		b.WriteString(valueStyle.Render(strings.Join(section.ids, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
