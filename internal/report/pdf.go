package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Brand colors carried over from the web UI.
var (
	colorHeading    = [3]int{102, 126, 234}
	colorSubheading = [3]int{118, 75, 162}
	colorImproved   = [3]int{0, 168, 107}
)

// GeneratePDF renders the improved SRS document as PDF bytes.
func GeneratePDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.CellFormat(0, 10, "Improved SRS Document", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, "Generated: "+doc.GeneratedAt.Format("January 2, 2006 at 3:04 PM"), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Requirements: %d", len(doc.Requirements)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Clarifications Provided: %d", len(doc.Clarifications)), "", 1, "", false, 0, "")
	pdf.Ln(10)

	if len(doc.Clarifications) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(colorSubheading[0], colorSubheading[1], colorSubheading[2])
		pdf.CellFormat(0, 10, "User-Provided Clarifications", "", 1, "", false, 0, "")
		pdf.Ln(2)

		pdf.SetTextColor(0, 0, 0)
		for _, c := range doc.Clarifications {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Write(6, tr(c.Term+": "))
			pdf.SetFont("Helvetica", "", 11)
			pdf.Write(6, tr(c.Value))
			pdf.Ln(6)
		}
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorSubheading[0], colorSubheading[1], colorSubheading[2])
	pdf.CellFormat(0, 10, "Improved Requirements", "", 1, "", false, 0, "")
	pdf.Ln(2)

	for i, req := range doc.Requirements {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
		pdf.CellFormat(0, 8, fmt.Sprintf("Requirement %d - %s", i+1, req.Category), "", 1, "", false, 0, "")

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.Write(6, "Before: ")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(req.Original), "", "", false)

		if req.Changed() {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Write(6, "After: ")
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(colorImproved[0], colorImproved[1], colorImproved[2])
			pdf.MultiCell(0, 6, tr(req.Improved), "", "", false)
		} else {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Write(6, "Status: ")
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(colorImproved[0], colorImproved[1], colorImproved[2])
			pdf.MultiCell(0, 6, "No ambiguities detected - requirement is clear", "", "", false)
		}

		pdf.Ln(5)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}
