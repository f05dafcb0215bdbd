package reports

import (
	"context"
	"sort"
	"strings"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
)

// GroupedLine is one name bucket of a period breakdown, the sum of
// every flattened line carrying that name.
type GroupedLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodStatement is the reduction of a date range's day sheets into
// totals and grouped breakdowns. A nil statement means the range holds
// no sheets at all, which the caller must keep distinct from a
// zero-filled one.
type PeriodStatement struct {
	FromDate models.MyDateString `json:"from_date"`
	ToDate   models.MyDateString `json:"to_date"`
	DayCount int                 `json:"day_count"`

	GrossReceipts decimal.Decimal `json:"gross_receipts"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetReceipts   decimal.Decimal `json:"net_receipts"`
	Card          decimal.Decimal `json:"card"`
	Cheque        decimal.Decimal `json:"cheque"`
	MealTickets   decimal.Decimal `json:"meal_tickets"`
	Cash          decimal.Decimal `json:"cash"`
	Bancaire      decimal.Decimal `json:"bancaire"`

	SupplierExpenses []*GroupedLine `json:"supplier_expenses"`
	DailyExpenses    []*GroupedLine `json:"daily_expenses"`
	MiscExpenses     []*GroupedLine `json:"misc_expenses"`
	AdminExpenses    []*GroupedLine `json:"admin_expenses"`
	Advances         []*GroupedLine `json:"advances"`
	Overtime         []*GroupedLine `json:"overtime"`
	Extras           []*GroupedLine `json:"extras"`
	Bonuses          []*GroupedLine `json:"bonuses"`
}

type namedAmount struct {
	name   string
	amount decimal.Decimal
}

// groupByName sums a flattened list per name, drops buckets whose sum
// is not positive, and orders the rest by amount descending. An empty
// filter leaves the grouping untouched; a non-empty one keeps only the
// names containing it, case-insensitively. The filter never changes the
// numeric totals, only the displayed breakdown.
func groupByName(lines []namedAmount, filter string) []*GroupedLine {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, seen := sums[line.name]; !seen {
			order = append(order, line.name)
		}
		sums[line.name] = sums[line.name].Add(line.amount)
	}

	grouped := make([]*GroupedLine, 0, len(order))
	for _, name := range order {
		amount := sums[name]
		if !amount.IsPositive() {
			continue
		}
		grouped = append(grouped, &GroupedLine{Name: name, Amount: utils.RoundAmount(amount)})
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Amount.GreaterThan(grouped[j].Amount)
	})

	if filter == "" {
		return grouped
	}
	needle := strings.ToLower(filter)
	filtered := make([]*GroupedLine, 0, len(grouped))
	for _, g := range grouped {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func flattenExpenseLines(records []*models.DayRecord, pick func(*models.DayRecord) models.ExpenseLineList) []namedAmount {
	var flat []namedAmount
	for _, record := range records {
		for _, line := range pick(record) {
			flat = append(flat, namedAmount{name: line.Name, amount: line.Amount})
		}
	}
	return flat
}

func flattenPayoutLines(records []*models.DayRecord, pick func(*models.DayRecord) models.PayoutLineList) []namedAmount {
	var flat []namedAmount
	for _, record := range records {
		for _, line := range pick(record) {
			flat = append(flat, namedAmount{name: line.Username, amount: line.Amount})
		}
	}
	return flat
}

func flattenAdminLines(records []*models.DayRecord) []namedAmount {
	var flat []namedAmount
	for _, record := range records {
		for _, line := range record.AdminLines {
			flat = append(flat, namedAmount{name: line.Designation, amount: line.Amount})
		}
	}
	return flat
}

// BuildPeriodStatement reduces the given day sheets into one statement.
// It is pure: re-run it whenever the record set or filter changes.
// Returns nil when records is empty.
func BuildPeriodStatement(records []*models.DayRecord, bankDepositTotal decimal.Decimal, filter string) *PeriodStatement {
	if len(records) == 0 {
		return nil
	}

	statement := PeriodStatement{
		DayCount: len(records),
		Bancaire: utils.RoundAmount(bankDepositTotal),
	}

	for _, record := range records {
		statement.GrossReceipts = statement.GrossReceipts.Add(record.GrossReceipts)
		statement.TotalExpenses = statement.TotalExpenses.Add(record.TotalExpenses())
		statement.Card = statement.Card.Add(record.Card)
		statement.Cheque = statement.Cheque.Add(record.Cheque)
		statement.MealTickets = statement.MealTickets.Add(record.MealTickets)
	}
	statement.GrossReceipts = utils.RoundAmount(statement.GrossReceipts)
	statement.TotalExpenses = utils.RoundAmount(statement.TotalExpenses)
	statement.Card = utils.RoundAmount(statement.Card)
	statement.Cheque = utils.RoundAmount(statement.Cheque)
	statement.MealTickets = utils.RoundAmount(statement.MealTickets)
	statement.NetReceipts, statement.Cash = models.DeriveCash(
		statement.GrossReceipts, statement.TotalExpenses,
		statement.Card, statement.Cheque, statement.MealTickets)

	statement.SupplierExpenses = groupByName(flattenExpenseLines(records, func(r *models.DayRecord) models.ExpenseLineList { return r.SupplierLines }), filter)
	statement.DailyExpenses = groupByName(flattenExpenseLines(records, func(r *models.DayRecord) models.ExpenseLineList { return r.DailyLines }), filter)
	statement.MiscExpenses = groupByName(flattenExpenseLines(records, func(r *models.DayRecord) models.ExpenseLineList { return r.MiscLines }), filter)
	statement.AdminExpenses = groupByName(flattenAdminLines(records), filter)
	statement.Advances = groupByName(flattenPayoutLines(records, func(r *models.DayRecord) models.PayoutLineList { return r.Advances }), filter)
	statement.Overtime = groupByName(flattenPayoutLines(records, func(r *models.DayRecord) models.PayoutLineList { return r.Overtime }), filter)
	statement.Extras = groupByName(flattenPayoutLines(records, func(r *models.DayRecord) models.PayoutLineList { return r.Extras }), filter)
	statement.Bonuses = groupByName(flattenPayoutLines(records, func(r *models.DayRecord) models.PayoutLineList { return r.Bonuses }), filter)

	return &statement
}

// GetPeriodStatement fetches the range's day sheets and bank deposits
// and reduces them. Returns nil (no error) when the range has no
// sheets.
func GetPeriodStatement(ctx context.Context, fromDate models.MyDateString, toDate models.MyDateString, filter *string) (*PeriodStatement, error) {
	started := time.Now()

	cacheKey := "PeriodStatement:" + fromDate.DateKey() + ":" + toDate.DateKey() + ":" + utils.DereferencePtr(filter)
	if reportCacheEnabled() {
		var cached PeriodStatement
		if exists, err := cacheGet(cacheKey, &cached); err == nil && exists {
			return &cached, nil
		}
	}

	records, err := models.GetDayRecordsByRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	depositTotal, err := models.GetBankDepositTotal(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	statement := BuildPeriodStatement(records, depositTotal, utils.DereferencePtr(filter))
	statement.FromDate = fromDate
	statement.ToDate = toDate

	if reportCacheEnabled() {
		if err := cacheSet(cacheKey, statement, reportCacheTTL()); err != nil {
			config.LogError(config.GetLogger(), "reports", "GetPeriodStatement", "cache set", cacheKey, err)
		}
	}

	logSlowReport(ctx, "period_statement", started, map[string]any{
		"from": fromDate.DateKey(), "to": toDate.DateKey(), "days": len(records),
	})
	return statement, nil
}
