package handlers

import (
	"net/http"
	"strconv"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShopHandler struct {
	DB *gorm.DB
}

// GetShops lists approved shops for the discovery page. Supports
// ?search= (name or address substring), ?min_rating= and ?sort=rating|name.
func (h *ShopHandler) GetShops(c *gin.Context) {
	query := h.DB.Model(&models.Shop{}).Where("approved = ?", true)

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		rating, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
			return
		}
		query = query.Where("rating >= ?", rating)
	}

	switch c.DefaultQuery("sort", "rating") {
	case "name":
		query = query.Order("name ASC")
	case "rating":
		query = query.Order("rating DESC")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort; must be 'rating' or 'name'"})
		return
	}

	var shops []models.Shop
	if err := query.Preload("Services").Preload("Barbers").Find(&shops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shops": shops,
		"total": len(shops),
	})
}

// GetShop returns one shop with services, staff and reviews.
// Unapproved shops are hidden from the public detail page.
func (h *ShopHandler) GetShop(c *gin.Context) {
	id := c.Param("id")

	var shop models.Shop
	err := h.DB.Preload("Services").Preload("Barbers").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND approved = ?", id, true).First(&shop).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// GetShopSlots returns the open time slots for a date. Availability is
// a fixed template; see utils.GetAvailableSlots.
func (h *ShopHandler) GetShopSlots(c *gin.Context) {
	id := c.Param("id")

	var shop models.Shop
	if err := h.DB.Where("id = ? AND approved = ?", id, true).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": utils.GetAvailableSlots(date, id),
	})
}

func (h *ShopHandler) GetShopReviews(c *gin.Context) {
	id := c.Param("id")

	var shop models.Shop
	if err := h.DB.Where("id = ?", id).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	var reviews []models.Review
	if err := h.DB.Where("shop_id = ?", id).Order("created_at ASC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// CreateReview posts a review on a shop. Any signed-in user can review;
// reviews are append-only and never recompute the shop's seed rating.
func (h *ShopHandler) CreateReview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var shop models.Shop
	if err := h.DB.Where("id = ? AND approved = ?", c.Param("id"), true).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	var user models.User
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	authorID := user.ID
	review := models.Review{
		ShopID:     shop.ID,
		AuthorID:   &authorID,
		AuthorName: user.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := h.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
