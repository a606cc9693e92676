package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "CustomerName", "Email", "City", "ItemCount",
			"Subtotal", "DiscountCode", "DiscountAmount", "Tax", "ShippingCost",
			"TotalAmount", "DeliveryMethod", "PaymentMethod", "Status", "PaymentStatus",
			"CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			itemCount := 0
			for _, it := range o.Items {
				itemCount += it.Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.Delivery.Name)
			row.AddCell().SetValue(o.Delivery.Email)
			row.AddCell().SetValue(o.Delivery.City)
			row.AddCell().SetValue(itemCount)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DiscountCode)
			row.AddCell().SetValue(o.DiscountAmount)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.DeliveryMethod)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
