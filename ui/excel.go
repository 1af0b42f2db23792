package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"reliefreach/domain/experiment"
)

// BuildResultsWorkbook renders one experiment snapshot as an xlsx workbook:
// a header row, one row per variant, and the insights below.
func BuildResultsWorkbook(results *experiment.Results) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	headers := []string{"Variation", "Impressions", "Engagement", "Clicks", "Shares", "Conversion Rate", "Winner"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, vr := range results.VariantResults {
		rowIdx := r + 2
		values := []any{
			vr.Variant.Name,
			vr.Performance.Impressions,
			vr.Performance.Engagement,
			vr.Performance.Clicks,
			vr.Performance.Shares,
			vr.Performance.ConversionRate,
			vr.IsWinner,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Insights block two rows below the variant table
	insightRow := len(results.VariantResults) + 4
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", insightRow), "Insights"); err != nil {
		return nil, err
	}
	for i, insight := range results.Insights {
		cell := fmt.Sprintf("A%d", insightRow+1+i)
		if err := f.SetCellValue(sheet, cell, insight); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (s *Server) handleExportExperiment(c *gin.Context) {
	results := s.experimentByParam(c)
	if results == nil {
		return
	}

	f, err := BuildResultsWorkbook(results)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("experiment_%s.xlsx", results.ExperimentID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		s.container.Logger.Error("failed to stream workbook: %v", err)
	}
}
