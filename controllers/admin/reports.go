package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
)

type SalesRow struct {
	Day      time.Time `json:"day"`
	Orders   int64     `json:"orders"`
	Revenue  float64   `json:"revenue"`
	Discount float64   `json:"discount"`
	Tax      float64   `json:"tax"`
}

// parseRange reads from/to query params, defaulting to the trailing 30 days.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return from, to, false
		}
		to = t.AddDate(0, 0, 1) // inclusive end day
	}
	return from, to, true
}

func fetchSales(db *gorm.DB, from, to time.Time) ([]SalesRow, error) {
	var rows []SalesRow
	err := db.Model(&models.Order{}).
		Select(`date_trunc('day', created_at) AS day,
			count(*) AS orders,
			coalesce(sum(total), 0) AS revenue,
			coalesce(sum(discount), 0) AS discount,
			coalesce(sum(tax), 0) AS tax`).
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status <> ?", models.OrderStatusCancelled).
		Group("day").
		Order("day").
		Scan(&rows).Error
	return rows, err
}

// GET /api/admin/reports/sales
func SalesReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parseRange(c)
		if !ok {
			return
		}

		rows, err := fetchSales(db, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
			return
		}

		var totalOrders int64
		var totalRevenue float64
		for _, r := range rows {
			totalOrders += r.Orders
			totalRevenue += r.Revenue
		}

		c.JSON(http.StatusOK, gin.H{
			"from":          from.Format("2006-01-02"),
			"to":            to.Format("2006-01-02"),
			"days":          rows,
			"total_orders":  totalOrders,
			"total_revenue": totalRevenue,
		})
	}
}

// GET /api/admin/reports/sales/export
func ExportSalesReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parseRange(c)
		if !ok {
			return
		}

		rows, err := fetchSales(db, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"Day", "Orders", "Revenue", "Discount", "Tax"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, r := range rows {
			row := sheet.AddRow()
			row.AddCell().SetValue(r.Day.Format("2006-01-02"))
			row.AddCell().SetValue(r.Orders)
			row.AddCell().SetValue(r.Revenue)
			row.AddCell().SetValue(r.Discount)
			row.AddCell().SetValue(r.Tax)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
