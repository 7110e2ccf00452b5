package report

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
)

const SummarySheet = "Summary"

var SummaryTitle = []string{
	"Original",
	"Replicate",
	"Pattern",
	"Direction",
	"OriginalReads",
	"ReplicateReads",
	"Concatenated",
	"Extracted",
}

var center = &excelize.Style{
	Alignment: &excelize.Alignment{
		Horizontal: "center",
	},
}

func SetCellStr(xlsx *excelize.File, sheet string, col, row int, value string) {
	simpleUtil.CheckErr(
		xlsx.SetCellStr(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			value,
		),
	)
}

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// SummaryRow lays out one result in SummaryTitle order.
func SummaryRow(r replicate.Result) []interface{} {
	return []interface{}{
		r.Original,
		r.Replicate,
		r.Pattern,
		r.Name.Direction,
		r.OriginalReads,
		r.ReplicateReads,
		r.Concatenated,
		strings.Join(r.Extracted, ","),
	}
}

// WriteXlsx saves results as a single Summary sheet at path.
func WriteXlsx(path string, results []replicate.Result) (err error) {
	defer recoverErr(&err)

	var xlsx = excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", SummarySheet))

	var (
		style   = simpleUtil.HandleError(xlsx.NewStyle(center))
		lastCol = simpleUtil.HandleError(excelize.CoordinatesToCellName(len(SummaryTitle), 1))
	)
	for i, s := range SummaryTitle {
		SetCellStr(xlsx, SummarySheet, 1+i, 1, s)
	}
	simpleUtil.CheckErr(xlsx.SetCellStyle(SummarySheet, "A1", lastCol, style))

	for i, r := range results {
		SetRow(xlsx, SummarySheet, 1, 2+i, SummaryRow(r))
	}
	simpleUtil.CheckErr(xlsx.SaveAs(path))
	return nil
}

// recoverErr turns a goUtil panic into the returned error.
func recoverErr(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
		} else {
			*err = fmt.Errorf("%v", r)
		}
	}
}
