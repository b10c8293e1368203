package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/repository"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/carneiroDotDev/sole-and-ankle/views"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{"Name", "Slug", "Price", "Sale Price", "Variant", "Colors"}

type exportFormat struct {
	contentType string
	write       func(w io.Writer, cards []views.ShoeCardView) error
}

var exportFormats = map[string]exportFormat{
	"xlsx": {contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", write: writeCatalogExcel},
	"pdf":  {contentType: "application/pdf", write: writeCatalogPDF},
}

func exportRow(card views.ShoeCardView) []string {
	return []string{card.Name, card.Slug, card.Price, card.SalePrice, utils.Humanize(card.Variant.String()), card.ColorLabel}
}

// ExportCatalog handles GET /v1/admin/shoes/export?format=xlsx|pdf
func (sc *ShoeController) ExportCatalog(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	utils.LogInfo("ExportCatalog called with format %s", format)

	export, ok := exportFormats[format]
	if !ok {
		utils.BadRequest(c, utils.ErrInvalidFormat, nil)
		return
	}

	filter := repository.ListFilter{SortBy: c.DefaultQuery("sort", repository.SortNewest)}
	cards, _, err := sc.catalog.Cards(c.Request.Context(), filter)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.LogDebug("Exporting %d shoes as %s", len(cards), format)

	filename := fmt.Sprintf("catalog_%s.%s", time.Now().Format("2006-01-02"), format)
	if err := sendExport(c, filename, export, cards); err != nil {
		utils.LogError("Failed to write %s export: %v", format, err)
		utils.InternalServerError(c, "Failed to generate export", nil)
		return
	}
	utils.LogInfo("Catalog export %s generated", filename)
}

// sendExport buffers the whole document before writing the response; nothing
// is sent when rendering fails.
func sendExport(c *gin.Context, filename string, export exportFormat, cards []views.ShoeCardView) error {
	var buf bytes.Buffer
	if err := export.write(&buf, cards); err != nil {
		return err
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, export.contentType, buf.Bytes())
	return nil
}

func writeCatalogExcel(w io.Writer, cards []views.ShoeCardView) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		return err
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Catalog")
	sheet.AddRow()

	headerStyle := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	headerStyle.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle)
	}

	for _, card := range cards {
		row := sheet.AddRow()
		for _, value := range exportRow(card) {
			row.AddCell().SetString(value)
		}
	}

	return file.Write(w)
}

func writeCatalogPDF(w io.Writer, cards []views.ShoeCardView) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, utils.AppName+" - Catalog")
	pdf.Ln(14)

	colWidths := []float64{70, 60, 30, 30, 40, 30}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range exportHeaders {
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for i, card := range cards {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for j, value := range exportRow(card) {
			align := "L"
			if j == 2 || j == 3 {
				align = "R"
			}
			pdf.CellFormat(colWidths[j], 8, value, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
