package report

import(
	"io"

	"github.com/jung-kurt/gofpdf"
)

const(
	pdfMarginMM    = 10.0
	pdfRowHeightMM = 5.0
)

var(
	headerFillRGB = []int{0xdd, 0xdd, 0xee}
)

// OutputAsPDF lays the report out as a landscape A4 table: title, the metadata, the
// free-text log, then the rows, repeating the header on each new page.
func (r *Report)OutputAsPDF(w io.Writer) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(r.Name, true)
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(false, pdfMarginMM)
	pdf.AddPage()

	pageW,pageH := pdf.GetPageSize()
	usableW := pageW - 2*pdfMarginMM

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(usableW, 8, r.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	for _,kv := range r.MetadataTable() {
		pdf.CellFormat(usableW*0.4, pdfRowHeightMM, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(usableW*0.2, pdfRowHeightMM, kv[1], "", 1, "R", false, 0, "")
	}
	if r.Log != "" {
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 8)
		pdf.MultiCell(usableW, 4, r.Log, "", "L", false)
	}
	pdf.Ln(4)

	ncols := len(r.HeadersText)
	for _,row := range r.RowsText {
		if len(row) > ncols { ncols = len(row) }
	}
	if ncols == 0 {
		return pdf.Output(w)
	}
	colW := usableW / float64(ncols)

	header := func() {
		pdf.SetFont("Arial", "B", 7)
		pdf.SetFillColor(headerFillRGB[0], headerFillRGB[1], headerFillRGB[2])
		for _,h := range r.HeadersText {
			pdf.CellFormat(colW, pdfRowHeightMM, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 7)
	}

	header()
	for _,row := range r.RowsText {
		if _,y := pdf.GetXY(); y+pdfRowHeightMM > pageH-pdfMarginMM {
			pdf.AddPage()
			header()
		}
		for _,cell := range row {
			pdf.CellFormat(colW, pdfRowHeightMM, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
