package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/warung-pos/models"
)

func makeTrx(ts time.Time, method string, items ...models.TransactionItem) models.Transaction {
	total := 0
	for _, item := range items {
		total += item.Price * item.Qty
	}
	return models.Transaction{
		ID:            fmt.Sprintf("trx-%d", ts.UnixNano()),
		Timestamp:     ts,
		TotalAmount:   total,
		PaymentMethod: method,
		Items:         items,
	}
}

func TestBuildReportSummary(t *testing.T) {
	now := time.Now()
	trxs := []models.Transaction{
		makeTrx(now, models.PaymentMethodCash, models.TransactionItem{ProductName: "Es Campur", Price: 10000, Qty: 1}),
		makeTrx(now, models.PaymentMethodCash, models.TransactionItem{ProductName: "Ayam Bakar", Price: 20000, Qty: 1}),
		makeTrx(now, models.PaymentMethodQRIS, models.TransactionItem{ProductName: "Nasi Goreng", Price: 15000, Qty: 2}),
	}

	report := BuildReport(trxs)

	assert.Equal(t, 60000, report.Summary.TotalRevenue)
	assert.Equal(t, 3, report.Summary.TotalTransactions)
	assert.Equal(t, 20000.0, report.Summary.AverageBill)
	assert.Equal(t, 30000, report.Summary.CashTotal)
	assert.Equal(t, 30000, report.Summary.QrisTotal)

	// breakdown always adds back up to revenue
	assert.Equal(t, report.Summary.TotalRevenue, report.Summary.CashTotal+report.Summary.QrisTotal)
}

func TestBuildReportEmptySet(t *testing.T) {
	report := BuildReport(nil)

	assert.Equal(t, 0, report.Summary.TotalRevenue)
	assert.Equal(t, 0, report.Summary.TotalTransactions)
	assert.Equal(t, 0.0, report.Summary.AverageBill)
	assert.Empty(t, report.TopItemsByQty)
	assert.Len(t, report.HourlySales, 24)
}

func TestBuildReportItemAggregation(t *testing.T) {
	now := time.Now()
	trxs := []models.Transaction{
		makeTrx(now, models.PaymentMethodCash,
			models.TransactionItem{ProductName: "Nasi Goreng", Price: 15000, Qty: 2},
			models.TransactionItem{ProductName: "Es Teh Manis", Price: 4000, Qty: 1},
		),
		makeTrx(now, models.PaymentMethodQRIS,
			models.TransactionItem{ProductName: "Nasi Goreng", Price: 15000, Qty: 1},
		),
	}

	report := BuildReport(trxs)

	byName := make(map[string]ItemSales)
	itemRevenue := 0
	for _, item := range report.TopItemsByQty {
		byName[item.ProductName] = item
		itemRevenue += item.Revenue
	}

	assert.Equal(t, 3, byName["Nasi Goreng"].Qty)
	assert.Equal(t, 45000, byName["Nasi Goreng"].Revenue)
	assert.Equal(t, 1, byName["Es Teh Manis"].Qty)

	// per-item revenues add back up to total revenue
	assert.Equal(t, report.Summary.TotalRevenue, itemRevenue)
}

func TestTopItemsTieBreakAlphabetical(t *testing.T) {
	now := time.Now()
	trxs := []models.Transaction{
		makeTrx(now, models.PaymentMethodCash,
			models.TransactionItem{ProductName: "Zuppa", Price: 10000, Qty: 2},
			models.TransactionItem{ProductName: "Bakso", Price: 10000, Qty: 2},
			models.TransactionItem{ProductName: "Mie Goreng", Price: 10000, Qty: 2},
		),
	}

	report := BuildReport(trxs)

	names := []string{}
	for _, item := range report.TopItemsByQty {
		names = append(names, item.ProductName)
	}
	assert.Equal(t, []string{"Bakso", "Mie Goreng", "Zuppa"}, names)
}

func TestTopItemsTruncatedToLimit(t *testing.T) {
	now := time.Now()
	items := []models.TransactionItem{}
	for i := 0; i < TopItemsLimit+3; i++ {
		items = append(items, models.TransactionItem{
			ProductName: fmt.Sprintf("Menu %02d", i),
			Price:       1000,
			Qty:         i + 1,
		})
	}
	report := BuildReport([]models.Transaction{makeTrx(now, models.PaymentMethodCash, items...)})

	assert.Len(t, report.TopItemsByQty, TopItemsLimit)
	assert.Len(t, report.TopItemsByRevenue, TopItemsLimit)
	// highest quantity first
	assert.Equal(t, "Menu 07", report.TopItemsByQty[0].ProductName)
}

func TestTopItemsByRevenueIndependentOfQty(t *testing.T) {
	now := time.Now()
	trxs := []models.Transaction{
		makeTrx(now, models.PaymentMethodCash,
			// many cheap units vs few expensive ones
			models.TransactionItem{ProductName: "Kerupuk", Price: 1000, Qty: 10},
			models.TransactionItem{ProductName: "Ayam Bakar", Price: 20000, Qty: 2},
		),
	}

	report := BuildReport(trxs)

	assert.Equal(t, "Kerupuk", report.TopItemsByQty[0].ProductName)
	assert.Equal(t, "Ayam Bakar", report.TopItemsByRevenue[0].ProductName)
}

func TestHourlyHistogram(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	trxs := []models.Transaction{
		makeTrx(day.Add(9*time.Hour), models.PaymentMethodCash, models.TransactionItem{ProductName: "Kopi Hitam", Price: 5000, Qty: 1}),
		makeTrx(day.Add(9*time.Hour+30*time.Minute), models.PaymentMethodCash, models.TransactionItem{ProductName: "Kopi Hitam", Price: 5000, Qty: 2}),
		makeTrx(day.Add(18*time.Hour), models.PaymentMethodQRIS, models.TransactionItem{ProductName: "Bakso", Price: 15000, Qty: 1}),
	}

	report := BuildReport(trxs)

	assert.Len(t, report.HourlySales, 24)
	assert.Equal(t, 15000, report.HourlySales[9].Sales)
	assert.Equal(t, 15000, report.HourlySales[18].Sales)
	assert.Equal(t, 0, report.HourlySales[12].Sales)
	assert.Equal(t, 9, report.HourlySales[9].Hour)
}

func TestPaginateConcatReproducesList(t *testing.T) {
	now := time.Now()
	trxs := make([]models.Transaction, 25)
	for i := range trxs {
		trxs[i] = makeTrx(now.Add(-time.Duration(i)*time.Minute), models.PaymentMethodCash,
			models.TransactionItem{ProductName: "Teh Hangat", Price: 3000, Qty: 1})
	}

	var concat []models.Transaction
	for page := 1; ; page++ {
		result := Paginate(trxs, page, 10)
		assert.Equal(t, 25, result.Total)
		assert.Equal(t, 3, result.TotalPages)
		if len(result.Items) == 0 {
			break
		}
		concat = append(concat, result.Items...)
	}

	assert.Equal(t, trxs, concat)
}

func TestPaginateDefaults(t *testing.T) {
	now := time.Now()
	trxs := []models.Transaction{
		makeTrx(now, models.PaymentMethodCash, models.TransactionItem{ProductName: "Bakso", Price: 15000, Qty: 1}),
	}

	result := Paginate(trxs, 0, 0)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Len(t, result.Items, 1)

	beyond := Paginate(trxs, 5, 10)
	assert.Empty(t, beyond.Items)
}

func TestDateRangePresets(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	start, end := DateRange(FilterToday, time.Time{}, time.Time{}, now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.After(now))

	start, end = DateRange(FilterYesterday, time.Time{}, time.Time{}, now)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.Before(time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)))

	start, end = DateRange(FilterLast7Days, time.Time{}, time.Time{}, now)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end)

	start, end = DateRange(FilterMonthToDate, time.Time{}, time.Time{}, now)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end)
}

func TestDateRangeCustomInclusive(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	customStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	customEnd := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	start, end := DateRange(FilterCustom, customStart, customEnd, now)
	assert.Equal(t, customStart, start)
	// the whole end day is included
	assert.True(t, end.After(time.Date(2025, 6, 10, 23, 59, 59, 0, time.Local)))
	assert.True(t, end.Before(time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)))
}
