// Package excel renders a rent-or-buy comparison as a spreadsheet.
package excel

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"

	"lachine.dev/rentbuy"
)

const firstMonthCol = 3 // column C, after the row labels

type seriesRow struct {
	name   string
	series *rentbuy.Series
}

// ComparisonXLSX builds a workbook with a summary sheet and one sheet of
// monthly columns per strategy.
func ComparisonXLSX(c *rentbuy.Comparison) ([]byte, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "lachine.dev/rentbuy",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	writeSummarySheet(xlsx, sheet, c)
	_ = xlsx.SetSheetName(sheet, "Summary")

	if _, err := xlsx.NewSheet("Renting"); err != nil {
		return nil, err
	}
	writeSeriesSheet(xlsx, "Renting", []seriesRow{
		{"Rent", c.Renting.Rent},
		{"Capital", c.Renting.Capital},
	}, false)

	if _, err := xlsx.NewSheet("Buying"); err != nil {
		return nil, err
	}
	buying := []seriesRow{
		{"Capital", c.Buying.Capital},
		{"House value", c.Buying.House},
		{"Mortgage balance", c.Buying.Mortgage},
		{"Municipal tax", c.Buying.MunicipalTax},
		{"Net position", c.Buying.NetPosition},
	}
	writeSeriesSheet(xlsx, "Buying", buying, true)

	if be, ok := c.Breakeven(); ok {
		col := firstMonthCol + be.Sub(c.Buying.NetPosition.Start())
		row := 1 + len(buying)
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), customNumberFormat(), thickBorder("top"), highlight()))
		_ = xlsx.SetCellStyle("Buying", cell(col, row), cell(col, row), style)
	}

	xlsx.SetActiveSheet(0)

	// Increase size of window
	for i := range xlsx.WorkBook.BookViews.WorkBookView {
		xlsx.WorkBook.BookViews.WorkBookView[i].XWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].YWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowWidth = 25000
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowHeight = 25000 / 3 * 2
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(xlsx *excelize.File, sheet string, c *rentbuy.Comparison) {
	_ = xlsx.SetColWidth(sheet, "A", "A", 4)
	_ = xlsx.SetColWidth(sheet, "B", "B", 32)
	_ = xlsx.SetColWidth(sheet, "C", "C", 15)

	sc := c.Scenario
	row := 1

	row = summaryHeader(xlsx, sheet, row, "Scenario")
	row = summaryAmount(xlsx, sheet, row, "Initial capital", sc.Capital, false)
	row = summaryAmount(xlsx, sheet, row, "Housing budget per month", sc.HousingBudget, false)
	row = summaryAmount(xlsx, sheet, row, "Rent per month", sc.MonthlyRent, false)
	row = summaryAmount(xlsx, sheet, row, "House price", sc.HousePrice, false)
	row = summaryAmount(xlsx, sheet, row, "Downpayment", sc.Downpayment, false)
	row = summaryText(xlsx, sheet, row, "Start", c.Renting.Capital.Start().String())
	row = summaryText(xlsx, sheet, row, "Horizon", fmt.Sprintf("%d months", sc.Horizon))

	row++
	row = summaryHeader(xlsx, sheet, row, "Outcome")
	row = summaryAmount(xlsx, sheet, row, "Monthly mortgage payment", c.Buying.Payment, false)
	row = summaryAmount(xlsx, sheet, row, "Transfer tax", c.Buying.TransferTax, false)
	row = summaryAmount(xlsx, sheet, row, "Total rent paid", c.TotalRentPaid(), false)
	row = summaryAmount(xlsx, sheet, row, "Total mortgage interest", c.TotalInterest(), false)
	row = summaryAmount(xlsx, sheet, row, "Total municipal taxes", c.TotalMunicipalTax(), false)
	row = summaryAmount(xlsx, sheet, row, "Final capital when renting", c.Renting.Capital.Last(), true)
	row = summaryAmount(xlsx, sheet, row, "Final net position when buying", c.Buying.NetPosition.Last(), true)

	breakeven := "never"
	if m, ok := c.Breakeven(); ok {
		breakeven = m.String()
	}
	summaryText(xlsx, sheet, row, "Buying overtakes renting", breakeven)
}

func summaryHeader(xlsx *excelize.File, sheet string, row int, hdr string) int {
	_ = xlsx.SetCellValue(sheet, cell(2, row), hdr)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell(1, row), cell(3, row), style)
	return row + 1
}

func summaryAmount(xlsx *excelize.File, sheet string, row int, descr string, v float64, bold bool) int {
	_ = xlsx.SetCellValue(sheet, cell(2, row), descr)
	_ = xlsx.SetCellValue(sheet, cell(3, row), v)
	styles := []*excelize.Style{defaultStyle(), customNumberFormat()}
	if bold {
		styles = append(styles, fontBold())
	}
	style, _ := xlsx.NewStyle(mergeStyles(styles...))
	_ = xlsx.SetCellStyle(sheet, cell(1, row), cell(3, row), style)
	return row + 1
}

func summaryText(xlsx *excelize.File, sheet string, row int, descr, v string) int {
	_ = xlsx.SetCellValue(sheet, cell(2, row), descr)
	_ = xlsx.SetCellValue(sheet, cell(3, row), v)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell(3, row), cell(3, row), style)
	return row + 1
}

func writeSeriesSheet(xlsx *excelize.File, sheet string, rows []seriesRow, sumLast bool) {
	start, end := rows[0].series.Start(), rows[0].series.End()
	months := rows[0].series.Len()

	_ = xlsx.SetColWidth(sheet, "B", "B", 20)
	endName, _ := excelize.ColumnNumberToName(firstMonthCol + months)
	_ = xlsx.SetColWidth(sheet, "C", endName, 11)

	writeHeaderMonths(xlsx, sheet, 1, start, end)

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomRight",
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
	})

	for i, r := range rows {
		writeSeriesMonths(xlsx, sheet, 2+i, r.name, r.series, sumLast && i == len(rows)-1)
	}
}

func writeHeaderMonths(xlsx *excelize.File, sheet string, row int, start, end rentbuy.Month) {
	col := firstMonthCol
	for m := start; m <= end; m = m.Add(1) {
		_ = xlsx.SetCellValue(sheet, cell(col, row), m.String())
		col++
	}
	_ = xlsx.SetCellValue(sheet, cell(col, row), "Final")

	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell(2, row), cell(col, row), style)
}

func writeSeriesMonths(xlsx *excelize.File, sheet string, row int, descr string, s *rentbuy.Series, sum bool) {
	_ = xlsx.SetCellValue(sheet, cell(2, row), descr)
	col := firstMonthCol
	for m := s.Start(); m <= s.End(); m = m.Add(1) {
		v, _ := s.At(m)
		_ = xlsx.SetCellValue(sheet, cell(col, row), v)
		col++
	}
	_ = xlsx.SetCellValue(sheet, cell(col, row), s.Last())

	if sum {
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), customNumberFormat(), thickBorder("top")))
		_ = xlsx.SetCellStyle(sheet, cell(2, row), cell(col-1, row), style)
		style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBoldItalic(), customNumberFormat(), thickBorder("top")))
		_ = xlsx.SetCellStyle(sheet, cell(col, row), cell(col, row), style)
	} else {
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), customNumberFormat()))
		_ = xlsx.SetCellStyle(sheet, cell(2, row), cell(col-1, row), style)
		style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontItalic(), customNumberFormat()))
		_ = xlsx.SetCellStyle(sheet, cell(col, row), cell(col, row), style)
	}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		// solid white
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func customNumberFormat() *excelize.Style {
	fmt := "#,##0.00"
	return &excelize.Style{
		CustomNumFmt: &fmt,
	}
}

func fontItalic() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Italic: true,
		},
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontBoldItalic() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Italic: true,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func thickBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 2,
		})
	}
	return s
}

func highlight() *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFF50"},
			Pattern: 1,
		},
	}
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
