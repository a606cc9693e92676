package sellbackControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

func mapSellbackStatus(status string) (models.SellbackStatus, error) {
	switch strings.ToLower(status) {
	case string(models.SellbackStatusQuoteRequested):
		return models.SellbackStatusQuoteRequested, nil
	case string(models.SellbackStatusInspected):
		return models.SellbackStatusInspected, nil
	case string(models.SellbackStatusPaymentSent):
		return models.SellbackStatusPaymentSent, nil
	case string(models.SellbackStatusCompleted):
		return models.SellbackStatusCompleted, nil
	case string(models.SellbackStatusRejected):
		return models.SellbackStatusRejected, nil
	default:
		return "", errors.New("invalid sellback status")
	}
}

func generateRef() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SB-" + id[:6]
}

type SellbackIntakeInput struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Device           string `json:"device" binding:"required"`
	ClaimedCondition string `json:"claimed_condition" binding:"required"`
}

// POST /sellback
// Public buyback form; the submission enters the pipeline as "quote_requested".
func CreateSellback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SellbackIntakeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		condition, err := models.ParseGrade(input.ClaimedCondition)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition"})
			return
		}

		sellback := models.Sellback{
			RefNo:            generateRef(),
			CustomerName:     input.CustomerName,
			Email:            input.Email,
			Phone:            input.Phone,
			Device:           input.Device,
			ClaimedCondition: condition,
			Status:           models.SellbackStatusQuoteRequested,
		}

		if err := db.Create(&sellback).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register sellback"})
			return
		}
		c.JSON(http.StatusCreated, sellback)
	}
}

// GET /sellback/:ref
// Public status lookup.
func GetSellbackByRef(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sellback models.Sellback
		if err := db.Where("ref_no = ?", strings.ToUpper(c.Param("ref"))).First(&sellback).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sellback not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellback"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ref_no":        sellback.RefNo,
			"device":        sellback.Device,
			"status":        sellback.Status,
			"offered_price": sellback.OfferedPrice,
		})
	}
}

// GET /admin/sellback
func GetAllSellbacks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapSellbackStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("customer_name ILIKE ? OR device ILIKE ? OR ref_no ILIKE ?",
				likePattern, likePattern, likePattern)
		}

		var sellbacks []models.Sellback
		if err := query.Find(&sellbacks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellbacks"})
			return
		}
		c.JSON(http.StatusOK, sellbacks)
	}
}

type UpdateSellbackRequest struct {
	Status          string   `json:"status" binding:"required"`
	GradedCondition string   `json:"graded_condition"`
	OfferedPrice    *float64 `json:"offered_price"`
}

// PUT /admin/sellback/:id/status
// Moving to "inspected" is where the grade and offer get set.
func UpdateSellbackStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateSellbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapSellbackStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if req.GradedCondition != "" {
			grade, err := models.ParseGrade(req.GradedCondition)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid graded condition"})
				return
			}
			updates["graded_condition"] = grade
		}
		if req.OfferedPrice != nil {
			updates["offered_price"] = *req.OfferedPrice
		}

		if err := db.Model(&models.Sellback{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sellback status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sellback status updated successfully"})
	}
}

// DELETE /admin/sellback/:id
func DeleteSellback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sellback ID"})
			return
		}

		result := db.Delete(&models.Sellback{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sellback"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sellback not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sellback deleted"})
	}
}
