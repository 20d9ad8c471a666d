package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 5   // Line height in mm
	pdfFontSize   = 9
)

// writeReportPDF renders the plain-text run report into a PDF at outputPath.
func writeReportPDF(report, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, "dirforge run report", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Courier", "", pdfFontSize)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, report, "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
