package contractControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

func mapContractStatus(status string) (models.ContractStatus, error) {
	switch strings.ToLower(status) {
	case string(models.ContractStatusActive):
		return models.ContractStatusActive, nil
	case string(models.ContractStatusExpiring):
		return models.ContractStatusExpiring, nil
	case string(models.ContractStatusTerminated):
		return models.ContractStatusTerminated, nil
	default:
		return "", errors.New("invalid contract status")
	}
}

type ContractInput struct {
	CustomerName string    `json:"customer_name" binding:"required"`
	Company      string    `json:"company"`
	Email        string    `json:"email"`
	Type         string    `json:"type" binding:"required"`
	MonthlyPrice float64   `json:"monthly_price"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Notes        string    `json:"notes"`
}

// GET /admin/contracts
func GetAllContracts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapContractStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("customer_name ILIKE ? OR company ILIKE ?", likePattern, likePattern)
		}

		var contracts []models.Contract
		if err := query.Find(&contracts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contracts"})
			return
		}
		c.JSON(http.StatusOK, contracts)
	}
}

// POST /admin/contracts
func CreateContract(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContractInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contract := models.Contract{
			CustomerName: input.CustomerName,
			Company:      input.Company,
			Email:        input.Email,
			Type:         input.Type,
			MonthlyPrice: input.MonthlyPrice,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
			Status:       models.ContractStatusActive,
			Notes:        input.Notes,
		}

		if err := db.Create(&contract).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract"})
			return
		}
		c.JSON(http.StatusCreated, contract)
	}
}

// PUT /admin/contracts/:id
func UpdateContract(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
			return
		}

		var contract models.Contract
		if err := db.First(&contract, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}

		var input ContractInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contract.CustomerName = input.CustomerName
		contract.Company = input.Company
		contract.Email = input.Email
		contract.Type = input.Type
		contract.MonthlyPrice = input.MonthlyPrice
		contract.StartDate = input.StartDate
		contract.EndDate = input.EndDate
		contract.Notes = input.Notes

		if err := db.Save(&contract).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contract"})
			return
		}
		c.JSON(http.StatusOK, contract)
	}
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/contracts/:id/status
func UpdateContractStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateContractStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapContractStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Contract{}).Where("id = ?", id).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contract status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contract status updated successfully"})
	}
}

// DELETE /admin/contracts/:id
func DeleteContract(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
			return
		}

		result := db.Delete(&models.Contract{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contract"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contract deleted"})
	}
}
