// Package report renders the student's trial log as a printable PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/san-kum/physlab/internal/experiment"
)

// Meta is the report header block.
type Meta struct {
	Title   string
	Student string
	Course  string
}

// Build writes a lab-report PDF for the given trials.
func Build(w io.Writer, meta Meta, trials []experiment.Trial) error {
	if meta.Title == "" {
		meta.Title = "Physics Lab Report"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Student != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Student: %s", meta.Student))
		pdf.Ln(6)
	}
	if meta.Course != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Course: %s", meta.Course))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	atwood := filter(trials, "atwood")
	resonance := filter(trials, "resonance")

	if len(atwood) > 0 {
		section(pdf, "Half-Atwood trials")
		atwoodTable(pdf, atwood)
		pdf.Ln(8)
	}
	if len(resonance) > 0 {
		section(pdf, "Resonance-tube trials")
		resonanceTable(pdf, resonance)
	}
	if len(trials) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 6, "No trials logged.")
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func atwoodTable(pdf *gofpdf.Fpdf, trials []experiment.Trial) {
	headers := []string{"#", "m_table (kg)", "m_hang (kg)", "mu", "a (m/s2)", "T (N)", "friction (N)", "t_target (s)", "mode"}
	widths := []float64{10, 28, 28, 18, 26, 24, 28, 26, 28}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range trials {
		timeStr := "-"
		if v, ok := t.Outputs["time_to_target"]; ok {
			timeStr = fmt.Sprintf("%.3f", v)
		}
		cells := []string{
			fmt.Sprintf("%d", t.ID),
			fmt.Sprintf("%.2f", t.Inputs["mass_table_kg"]),
			fmt.Sprintf("%.2f", t.Inputs["mass_hanging_kg"]),
			fmt.Sprintf("%.2f", t.Inputs["mu"]),
			fmt.Sprintf("%.3f", t.Outputs["acceleration"]),
			fmt.Sprintf("%.2f", t.Outputs["tension"]),
			fmt.Sprintf("%.2f", t.Outputs["friction"]),
			timeStr,
			t.Mode,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func resonanceTable(pdf *gofpdf.Fpdf, trials []experiment.Trial) {
	headers := []string{"#", "f (Hz)", "L (m)", "target (m)", "v inferred (m/s)", "strength", "band", "accepted"}
	widths := []float64{10, 26, 26, 28, 36, 26, 26, 26}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range trials {
		accepted := "no"
		if t.Accepted {
			accepted = "yes"
		}
		cells := []string{
			fmt.Sprintf("%d", t.ID),
			fmt.Sprintf("%.2f", t.Inputs["frequency_hz"]),
			fmt.Sprintf("%.4f", t.Inputs["air_length_m"]),
			fmt.Sprintf("%.4f", t.Outputs["target_length_m"]),
			fmt.Sprintf("%.1f", t.Outputs["inferred_speed"]),
			fmt.Sprintf("%.3f", t.Outputs["strength"]),
			t.Band,
			accepted,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func filter(trials []experiment.Trial, name string) []experiment.Trial {
	out := make([]experiment.Trial, 0, len(trials))
	for _, t := range trials {
		if t.Experiment == name {
			out = append(out, t)
		}
	}
	return out
}
