package reports

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/xuri/excelize/v2"
)

const statementSheet = "Statement"

// ExportPeriodStatementExcel renders a period statement as a workbook:
// totals block on top, one two-column section per breakdown below it.
func ExportPeriodStatementExcel(ctx context.Context, fromDate models.MyDateString, toDate models.MyDateString, filter *string) (*excelize.File, error) {

	statement, err := GetPeriodStatement(ctx, fromDate, toDate, filter)
	if err != nil {
		return nil, err
	}
	if statement == nil {
		return nil, errors.New("no data for the selected period")
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(statementSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(statementSheet, "A1", "Period")
	f.SetCellValue(statementSheet, "B1", fromDate.DateKey()+" / "+toDate.DateKey())

	totals := []struct {
		label string
		value string
	}{
		{"Recette brute", utils.FormatAmount(statement.GrossReceipts)},
		{"Total dépenses", utils.FormatAmount(statement.TotalExpenses)},
		{"Recette nette", utils.FormatAmount(statement.NetReceipts)},
		{"Carte", utils.FormatAmount(statement.Card)},
		{"Chèque", utils.FormatAmount(statement.Cheque)},
		{"Tickets restaurant", utils.FormatAmount(statement.MealTickets)},
		{"Espèces", utils.FormatAmount(statement.Cash)},
		{"Bancaire", utils.FormatAmount(statement.Bancaire)},
	}
	row := 3
	for _, t := range totals {
		f.SetCellValue(statementSheet, "A"+fmt.Sprint(row), t.label)
		f.SetCellValue(statementSheet, "B"+fmt.Sprint(row), t.value)
		row++
	}
	row++

	sections := []struct {
		title string
		lines []*GroupedLine
	}{
		{"Fournisseurs", statement.SupplierExpenses},
		{"Journalier", statement.DailyExpenses},
		{"Divers", statement.MiscExpenses},
		{"Administration", statement.AdminExpenses},
		{"Avances", statement.Advances},
		{"Doublages", statement.Overtime},
		{"Extras", statement.Extras},
		{"Primes", statement.Bonuses},
	}
	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		f.SetCellValue(statementSheet, "A"+fmt.Sprint(row), section.title)
		row++
		for _, line := range section.lines {
			f.SetCellValue(statementSheet, "A"+fmt.Sprint(row), line.Name)
			f.SetCellValue(statementSheet, "B"+fmt.Sprint(row), utils.FormatAmount(line.Amount))
			row++
		}
		row++
	}

	return f, nil
}
