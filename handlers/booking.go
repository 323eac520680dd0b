package handlers

import (
	"net/http"

	"barberbook-backend/models"
	"barberbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB *gorm.DB
}

// CreateBooking books an appointment. The service name/price and barber
// name are resolved from the shop's own lists and snapshotted onto the
// booking; later edits to the service never touch existing bookings.
// Bookings are created confirmed - there is no approval step on the
// customer path.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		ShopID    uuid.UUID  `json:"shop_id" binding:"required"`
		ServiceID uuid.UUID  `json:"service_id" binding:"required"`
		BarberID  *uuid.UUID `json:"barber_id"`
		Date      string     `json:"date" binding:"required"`
		Time      string     `json:"time" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !utils.IsValidSlot(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
		return
	}

	var shop models.Shop
	err := h.DB.Preload("Services").Preload("Barbers").
		Where("id = ? AND approved = ?", req.ShopID, true).First(&shop).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	var service *models.Service
	for i := range shop.Services {
		if shop.Services[i].ID == req.ServiceID {
			service = &shop.Services[i]
			break
		}
	}
	if service == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service does not belong to this shop"})
		return
	}

	var barberName string
	if req.BarberID != nil {
		found := false
		for _, b := range shop.Barbers {
			if b.ID == *req.BarberID {
				barberName = b.Name
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Barber does not belong to this shop"})
			return
		}
	}

	var user models.User
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	booking := models.Booking{
		UserID:       user.ID,
		UserName:     user.Name,
		ShopID:       shop.ID,
		ShopName:     shop.Name,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		BarberID:     req.BarberID,
		BarberName:   barberName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       models.BookingStatusConfirmed,
	}

	if err := h.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	// The booking flow is complete; clear any draft the customer built up.
	h.DB.Where("user_id = ?", user.ID).Delete(&models.BookingDraft{})

	// Send confirmation email (non-blocking)
	utils.SendBookingConfirmation(user.Email, user.Name, shop.Name, booking.Date, booking.Time, booking.ServicePrice)

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the caller's bookings, newest first.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var bookings []models.Booking
	if err := h.DB.Where("user_id = ?", userID).Order("booked_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// GetBookingDraft returns the caller's in-progress selection, or an
// empty draft when nothing has been selected yet.
func (h *BookingHandler) GetBookingDraft(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var draft models.BookingDraft
	if err := h.DB.Where("user_id = ?", userID).First(&draft).Error; err != nil {
		draft = models.BookingDraft{UserID: userID.(uuid.UUID)}
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateBookingDraft merges the supplied fields into the caller's draft.
// Fields not present in the request keep their current value. No
// validation happens here - the draft is scratch state for the wizard;
// CreateBooking validates when the customer commits.
func (h *BookingHandler) UpdateBookingDraft(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		ShopID    *uuid.UUID `json:"shop_id"`
		ServiceID *uuid.UUID `json:"service_id"`
		BarberID  *uuid.UUID `json:"barber_id"`
		Date      *string    `json:"date"`
		Time      *string    `json:"time"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	uid := userID.(uuid.UUID)
	var draft models.BookingDraft
	if err := h.DB.Where("user_id = ?", uid).First(&draft).Error; err != nil {
		draft = models.BookingDraft{UserID: uid}
	}

	if req.ShopID != nil {
		draft.ShopID = req.ShopID
	}
	if req.ServiceID != nil {
		draft.ServiceID = req.ServiceID
	}
	if req.BarberID != nil {
		draft.BarberID = req.BarberID
	}
	if req.Date != nil {
		draft.Date = req.Date
	}
	if req.Time != nil {
		draft.Time = req.Time
	}

	if err := h.DB.Save(&draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// ResetBookingDraft clears every selection.
func (h *BookingHandler) ResetBookingDraft(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.DB.Where("user_id = ?", userID).Delete(&models.BookingDraft{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft reset"})
}
