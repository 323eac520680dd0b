package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminHandler serves the approval console: shop applications, a
// read-only view over all bookings, and user management.
type AdminHandler struct {
	DB *gorm.DB
}

// ListShops returns every shop, or one side of the approval split via
// ?status=pending|approved.
func (h *AdminHandler) ListShops(c *gin.Context) {
	query := h.DB.Model(&models.Shop{})

	switch c.Query("status") {
	case "":
		// all shops
	case "pending":
		query = query.Where("approved = ?", false)
	case "approved":
		query = query.Where("approved = ?", true)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status; must be 'pending' or 'approved'"})
		return
	}

	var shops []models.Shop
	if err := query.Preload("Services").Order("created_at DESC").Find(&shops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shops": shops,
		"total": len(shops),
	})
}

// ApproveShop flips the approval flag, making the shop publicly
// visible. Approving an already-approved shop is a no-op.
func (h *AdminHandler) ApproveShop(c *gin.Context) {
	var shop models.Shop
	if err := h.DB.Where("id = ?", c.Param("id")).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	if err := h.DB.Model(&shop).Update("approved", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve shop"})
		return
	}
	shop.Approved = true

	c.JSON(http.StatusOK, shop)
}

// RejectShop deletes the application outright. There is no audit
// trail; a rejected shop simply stops existing, along with its
// services, staff and reviews.
func (h *AdminHandler) RejectShop(c *gin.Context) {
	var shop models.Shop
	if err := h.DB.Where("id = ?", c.Param("id")).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.Barber{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shop).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject shop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop rejected and removed"})
}

// ListBookings is the admin's read-only view over all bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if shopID := c.Query("shop_id"); shopID != "" {
		query = query.Where("shop_id = ?", shopID)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Order("booked_at DESC").Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
		"pages":    int(math.Ceil(float64(total) / float64(limit))),
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	type UserResponse struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		IsBlocked bool      `json:"is_blocked"`
		CreatedAt time.Time `json:"created_at"`
	}

	var result []UserResponse
	for _, u := range users {
		result = append(result, UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			IsBlocked: u.IsBlocked,
			CreatedAt: u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users": result,
		"total": total,
		"page":  page,
		"limit": limit,
		"pages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// UpdateUser lets the admin block/unblock accounts or change roles.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	currentUserID, _ := c.Get("user_id")

	userUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := h.DB.Where("id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req struct {
		Role      *string `json:"role" binding:"omitempty,oneof=customer barber admin"`
		IsBlocked *bool   `json:"is_blocked"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Role != nil && currentUserID.(uuid.UUID) == userUUID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own role"})
		return
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsBlocked != nil {
		updates["is_blocked"] = *req.IsBlocked
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	h.DB.Where("id = ?", id).First(&user)

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"is_blocked": user.IsBlocked,
		"created_at": user.CreatedAt,
	})
}
