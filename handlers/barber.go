package handlers

import (
	"net/http"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberHandler serves the barber portal: one shop profile per barber
// account, keyed by the owning user id, plus service management and
// the shop's booking queue.
type BarberHandler struct {
	DB *gorm.DB
}

// myShop loads the caller's shop. Every portal endpoint goes through
// this so a barber can only ever touch their own records.
func (h *BarberHandler) myShop(c *gin.Context) (*models.Shop, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var shop models.Shop
	if err := h.DB.Preload("Services").Preload("Barbers").Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No shop profile found. Complete onboarding first."})
		return nil, false
	}
	return &shop, true
}

func (h *BarberHandler) GetMyShop(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, shop)
}

// SaveMyShop creates or updates the caller's shop profile. A new shop
// starts unapproved and stays invisible to customers until an admin
// approves it; updates never touch the approval flag. Saving the same
// profile twice leaves exactly one shop per owner.
func (h *BarberHandler) SaveMyShop(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		ShopName      string  `json:"shop_name" binding:"required"`
		Description   string  `json:"description" binding:"required"`
		Address       string  `json:"address" binding:"required"`
		Phone         string  `json:"phone" binding:"required"`
		Email         string  `json:"email" binding:"required,email"`
		Image         string  `json:"image"`
		Specialties   string  `json:"specialties"`
		UniquePoints  string  `json:"unique_points"`
		StartingPrice float64 `json:"starting_price" binding:"gte=0"`
		PriceRange    float64 `json:"price_range" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := utils.ValidateImageURL(req.Image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := userID.(uuid.UUID)

	var shop models.Shop
	err := h.DB.Where("owner_id = ?", uid).First(&shop).Error
	created := err != nil

	shop.OwnerID = &uid
	shop.Name = req.ShopName
	shop.Description = req.Description
	shop.Address = req.Address
	shop.Phone = req.Phone
	shop.Email = req.Email
	shop.Image = req.Image
	shop.Specialties = req.Specialties
	shop.UniquePoints = req.UniquePoints
	shop.StartingPrice = req.StartingPrice
	shop.PriceRange = req.PriceRange

	if created {
		shop.Approved = false
		if err := h.DB.Create(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop profile"})
			return
		}
		c.JSON(http.StatusCreated, shop)
		return
	}

	if err := h.DB.Save(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop profile"})
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *BarberHandler) CreateService(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Duration    int     `json:"duration" binding:"required,gt=0"`
		Price       float64 `json:"price" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	service := models.Service{
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	}

	if err := h.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *BarberHandler) UpdateService(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.DB.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Duration    *int     `json:"duration"`
		Price       *float64 `json:"price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
			return
		}
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		service.Price = *req.Price
	}

	if err := h.DB.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *BarberHandler) DeleteService(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.DB.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	if err := h.DB.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// GetShopBookings lists every booking against the barber's shop.
// ?status= filters to one status.
func (h *BarberHandler) GetShopBookings(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}

	query := h.DB.Where("shop_id = ?", shop.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("booked_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// UpdateBookingStatus accepts or declines a booking at the barber's
// shop. Only the confirmed and cancelled targets are reachable here,
// and only along an allowed transition.
func (h *BarberHandler) UpdateBookingStatus(c *gin.Context) {
	shop, ok := h.myShop(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := h.DB.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	newStatus := models.BookingStatus(req.Status)
	if !models.IsValidBookingTransition(booking.Status, newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
		return
	}

	if err := h.DB.Model(&booking).Update("status", newStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	booking.Status = newStatus

	// Notify the customer (non-blocking)
	var customer models.User
	if err := h.DB.Where("id = ?", booking.UserID).First(&customer).Error; err == nil {
		utils.SendBookingStatusUpdate(customer.Email, customer.Name, booking.ShopName, string(newStatus))
	}

	c.JSON(http.StatusOK, booking)
}
