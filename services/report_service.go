package services

import (
	"sort"
	"time"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/repositories"
)

// Date filter presets.
const (
	FilterToday       = "today"
	FilterYesterday   = "yesterday"
	FilterLast7Days   = "7days"
	FilterMonthToDate = "month"
	FilterCustom      = "custom"
)

// TopItemsLimit caps both rankings.
const TopItemsLimit = 5

type ReportSummary struct {
	TotalRevenue      int     `json:"total_revenue"`
	TotalTransactions int     `json:"total_transactions"`
	AverageBill       float64 `json:"average_bill"`
	CashTotal         int     `json:"cash_total"`
	QrisTotal         int     `json:"qris_total"`
}

type ItemSales struct {
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Revenue     int    `json:"revenue"`
}

type HourlyBucket struct {
	Hour  int `json:"hour"`
	Sales int `json:"sales"`
}

type SalesReport struct {
	Summary           ReportSummary  `json:"summary"`
	TopItemsByQty     []ItemSales    `json:"top_items_by_qty"`
	TopItemsByRevenue []ItemSales    `json:"top_items_by_revenue"`
	HourlySales       []HourlyBucket `json:"hourly_sales"`
}

type TransactionPage struct {
	Items      []models.Transaction `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// ReportService is the read side over the ledger. Nothing here mutates
// anything; every output is recomputable from a ledger snapshot.
type ReportService struct {
	Ledger *repositories.TransactionRepository
}

func NewReportService(ledger *repositories.TransactionRepository) *ReportService {
	return &ReportService{Ledger: ledger}
}

// DateRange resolves a filter preset to inclusive [start, end] bounds. For
// the custom preset the caller's dates are widened to whole local days.
func DateRange(filter string, customStart, customEnd time.Time, now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter {
	case FilterYesterday:
		start := midnight.AddDate(0, 0, -1)
		return start, midnight.Add(-time.Nanosecond)
	case FilterLast7Days:
		return midnight.AddDate(0, 0, -7), now
	case FilterMonthToDate:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case FilterCustom:
		start := time.Date(customStart.Year(), customStart.Month(), customStart.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(customEnd.Year(), customEnd.Month(), customEnd.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, 1).Add(-time.Nanosecond)
		return start, end
	default: // FilterToday
		return midnight, midnight.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
}

func (s *ReportService) Report(filter string, customStart, customEnd time.Time) (SalesReport, error) {
	start, end := DateRange(filter, customStart, customEnd, time.Now())
	trxs, err := s.Ledger.ListByRange(start, end)
	if err != nil {
		return SalesReport{}, err
	}
	return BuildReport(trxs), nil
}

func (s *ReportService) Transactions(filter string, customStart, customEnd time.Time, page, pageSize int) (TransactionPage, error) {
	start, end := DateRange(filter, customStart, customEnd, time.Now())
	trxs, err := s.Ledger.ListByRange(start, end)
	if err != nil {
		return TransactionPage{}, err
	}
	return Paginate(trxs, page, pageSize), nil
}

// BuildReport aggregates a filtered ledger snapshot. This is the only place
// item-level data is re-derived from ledger entries.
func BuildReport(trxs []models.Transaction) SalesReport {
	var report SalesReport

	itemSales := make(map[string]*ItemSales)
	hourly := make([]int, 24)

	for _, trx := range trxs {
		report.Summary.TotalRevenue += trx.TotalAmount
		switch trx.PaymentMethod {
		case models.PaymentMethodCash:
			report.Summary.CashTotal += trx.TotalAmount
		case models.PaymentMethodQRIS:
			report.Summary.QrisTotal += trx.TotalAmount
		}
		hourly[trx.Timestamp.Hour()] += trx.TotalAmount

		for _, item := range trx.Items {
			sales, ok := itemSales[item.ProductName]
			if !ok {
				sales = &ItemSales{ProductName: item.ProductName}
				itemSales[item.ProductName] = sales
			}
			sales.Qty += item.Qty
			sales.Revenue += item.Price * item.Qty
		}
	}

	report.Summary.TotalTransactions = len(trxs)
	if report.Summary.TotalTransactions > 0 {
		report.Summary.AverageBill = float64(report.Summary.TotalRevenue) / float64(report.Summary.TotalTransactions)
	}

	allItems := make([]ItemSales, 0, len(itemSales))
	for _, sales := range itemSales {
		allItems = append(allItems, *sales)
	}
	report.TopItemsByQty = topItems(allItems, func(a, b ItemSales) bool { return a.Qty > b.Qty })
	report.TopItemsByRevenue = topItems(allItems, func(a, b ItemSales) bool { return a.Revenue > b.Revenue })

	report.HourlySales = make([]HourlyBucket, 24)
	for hour, sales := range hourly {
		report.HourlySales[hour] = HourlyBucket{Hour: hour, Sales: sales}
	}
	return report
}

// topItems sorts descending by the given metric, ties broken by ascending
// product name, and truncates to TopItemsLimit.
func topItems(items []ItemSales, greater func(a, b ItemSales) bool) []ItemSales {
	ranked := make([]ItemSales, len(items))
	copy(ranked, items)
	sort.Slice(ranked, func(i, j int) bool {
		if greater(ranked[i], ranked[j]) {
			return true
		}
		if greater(ranked[j], ranked[i]) {
			return false
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})
	if len(ranked) > TopItemsLimit {
		ranked = ranked[:TopItemsLimit]
	}
	return ranked
}

// Paginate slices the timestamp-descending transaction list. Page numbers
// start at 1; out-of-range pages come back empty.
func Paginate(trxs []models.Transaction, page, pageSize int) TransactionPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total := len(trxs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return TransactionPage{
		Items:      trxs[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
