package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GetSalesReport returns summary metrics, top-item rankings and the hourly
// histogram for the requested period.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	filter, start, end, err := parseFilter(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	report, err := rc.Reports.Report(filter, start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales report", report)
}

// GetTransactionsPage returns one page of the filtered transaction list.
func (rc *ReportController) GetTransactionsPage(c *gin.Context) {
	filter, start, end, err := parseFilter(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := rc.Reports.Transactions(filter, start, end, page, pageSize)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transaction page", result)
}

func parseFilter(c *gin.Context) (string, time.Time, time.Time, error) {
	filter := c.DefaultQuery("filter", services.FilterToday)

	switch filter {
	case services.FilterToday, services.FilterYesterday, services.FilterLast7Days, services.FilterMonthToDate:
		return filter, time.Time{}, time.Time{}, nil
	case services.FilterCustom:
		start, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.Local)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("invalid start_date")
		}
		end := start
		if raw := c.Query("end_date"); raw != "" {
			end, err = time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				return "", time.Time{}, time.Time{}, fmt.Errorf("invalid end_date")
			}
		}
		return filter, start, end, nil
	default:
		return "", time.Time{}, time.Time{}, fmt.Errorf("unknown filter %q", filter)
	}
}
