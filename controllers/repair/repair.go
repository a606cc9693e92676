package repairControllers

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

func mapRepairStatus(status string) (models.RepairStatus, error) {
	switch strings.ToLower(status) {
	case string(models.RepairStatusReceived):
		return models.RepairStatusReceived, nil
	case string(models.RepairStatusDiagnosing):
		return models.RepairStatusDiagnosing, nil
	case string(models.RepairStatusAwaitingParts):
		return models.RepairStatusAwaitingParts, nil
	case string(models.RepairStatusRepairing):
		return models.RepairStatusRepairing, nil
	case string(models.RepairStatusCompleted):
		return models.RepairStatusCompleted, nil
	case string(models.RepairStatusDelivered):
		return models.RepairStatusDelivered, nil
	default:
		return "", errors.New("invalid repair status")
	}
}

// Repair refs look like REP-4F2A9C;  sellback uses SB- with the same shape.
func generateRef(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + id[:6]
}

type RepairIntakeInput struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Device       string `json:"device" binding:"required"`
	Issue        string `json:"issue" binding:"required"`
}

// POST /repairs
// Public booking form; the job enters the pipeline as "received".
func CreateRepair(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RepairIntakeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		repair := models.Repair{
			RefNo:        generateRef("REP"),
			CustomerName: input.CustomerName,
			Email:        input.Email,
			Phone:        input.Phone,
			Device:       input.Device,
			Issue:        input.Issue,
			Status:       models.RepairStatusReceived,
		}

		if err := db.Create(&repair).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register repair"})
			return
		}
		c.JSON(http.StatusCreated, repair)
	}
}

// GET /repairs/:ref
// Public status lookup by reference number.
func GetRepairByRef(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var repair models.Repair
		if err := db.Where("ref_no = ?", strings.ToUpper(c.Param("ref"))).First(&repair).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Repair not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ref_no":   repair.RefNo,
			"device":   repair.Device,
			"status":   repair.Status,
			"estimate": repair.Estimate,
		})
	}
}

// GET /admin/repairs
func GetAllRepairs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapRepairStatus(status)
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

		var repairs []models.Repair
		if err := query.Find(&repairs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repairs"})
			return
		}
		c.JSON(http.StatusOK, repairs)
	}
}

type UpdateRepairRequest struct {
	Status   string   `json:"status" binding:"required"`
	Estimate *float64 `json:"estimate"`
}

// PUT /admin/repairs/:id/status
func UpdateRepairStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateRepairRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapRepairStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if req.Estimate != nil {
			updates["estimate"] = *req.Estimate
		}

		if err := db.Model(&models.Repair{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update repair status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Repair status updated successfully"})
	}
}

// DELETE /admin/repairs/:id
func DeleteRepair(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid repair ID"})
			return
		}

		result := db.Delete(&models.Repair{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete repair"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Repair deleted"})
	}
}
