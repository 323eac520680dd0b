package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barberbook-backend/models"
)

func shopProfileBody() map[string]interface{} {
	return map[string]interface{}{
		"shop_name":   "Fade Factory",
		"description": "Precision fades downtown",
		"address":     "789 Fade Blvd",
		"phone":       "+1 555 0100",
		"email":       "shop@fadefactory.com",
		"price_range": 45.0,
	}
}

func TestBarberPortalRequiresBarberRole(t *testing.T) {
	db := freshDB()
	_, customerToken := seedTestUser(db, "justcustomer@example.com", "customer")
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/barber/shop", nil, customerToken))

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for customer on barber portal, got %d", w.Code)
	}
}

func TestGetMyShopBeforeOnboarding(t *testing.T) {
	db := freshDB()
	_, token := seedTestUser(db, "noshop@example.com", "barber")
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/barber/shop", nil, token))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 before onboarding, got %d", w.Code)
	}
}

func TestSaveMyShopCreatesUnapproved(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "onboard@example.com", "barber")
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/shop", shopProfileBody(), token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["approved"] != false {
		t.Error("new shop must start unapproved")
	}
	if resp["owner_id"] != barber.ID.String() {
		t.Errorf("expected owner_id %s, got %v", barber.ID, resp["owner_id"])
	}
}

func TestSaveMyShopUpsertKeepsOneShop(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "upsert@example.com", "barber")
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/shop", shopProfileBody(), token))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}

	// Approve it, then save again with a new name
	db.Model(&models.Shop{}).Where("owner_id = ?", barber.ID).Update("approved", true)

	body := shopProfileBody()
	body["shop_name"] = "Fade Factory Deluxe"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("PUT", "/api/barber/shop", body, token))
	if w2.Code != http.StatusOK {
		t.Fatalf("update failed: %d: %s", w2.Code, w2.Body.String())
	}

	var count int64
	db.Model(&models.Shop{}).Where("owner_id = ?", barber.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 shop per owner, got %d", count)
	}

	// Update must not reset the approval flag
	resp := parseResponse(w2)
	if resp["approved"] != true {
		t.Error("update must preserve the approval flag")
	}
	if resp["name"] != "Fade Factory Deluxe" {
		t.Errorf("expected updated name, got %v", resp["name"])
	}
}

func TestSaveMyShopValidation(t *testing.T) {
	db := freshDB()
	_, token := seedTestUser(db, "invalid@example.com", "barber")
	router := setupBarberRouter(db)

	body := shopProfileBody()
	delete(body, "shop_name")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/shop", body, token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without shop_name, got %d", w.Code)
	}

	body2 := shopProfileBody()
	body2["price_range"] = 0
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("PUT", "/api/barber/shop", body2, token))
	if w2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero price_range, got %d", w2.Code)
	}
}

func TestServiceCRUD(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "services@example.com", "barber")
	shop := seedOwnedShop(db, "Service Shop", barber.ID, true)
	router := setupBarberRouter(db)

	// Create
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/barber/services", map[string]interface{}{
		"name":     "Hot Towel Shave",
		"duration": 25,
		"price":    28.0,
	}, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d: %s", w.Code, w.Body.String())
	}
	created := parseResponse(w)
	svcID := created["id"].(string)
	if created["shop_id"] != shop.ID.String() {
		t.Errorf("service bound to wrong shop: %v", created["shop_id"])
	}

	// Partial update
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("PUT", "/api/barber/services/"+svcID, map[string]interface{}{
		"price": 32.0,
	}, token))
	if w2.Code != http.StatusOK {
		t.Fatalf("update failed: %d: %s", w2.Code, w2.Body.String())
	}
	updated := parseResponse(w2)
	if updated["price"].(float64) != 32 {
		t.Errorf("expected price 32, got %v", updated["price"])
	}
	if updated["name"] != "Hot Towel Shave" {
		t.Error("partial update must not clear other fields")
	}

	// Delete
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, authRequest("DELETE", "/api/barber/services/"+svcID, nil, token))
	if w3.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", w3.Code)
	}

	var count int64
	db.Model(&models.Service{}).Where("shop_id = ?", shop.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 services after delete, got %d", count)
	}
}

func TestServiceUpdateValidation(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "svcvalid@example.com", "barber")
	shop := seedOwnedShop(db, "Valid Shop", barber.ID, true)
	svc := seedService(db, shop.ID, "Cut", 30, 30)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/services/"+svc.ID.String(), map[string]interface{}{
		"duration": 0,
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero duration, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("PUT", "/api/barber/services/"+svc.ID.String(), map[string]interface{}{
		"price": -5,
	}, token))
	if w2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative price, got %d", w2.Code)
	}
}

func TestServiceScopedToOwnShop(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "scoped@example.com", "barber")
	seedOwnedShop(db, "Mine", barber.ID, true)

	otherBarber, _ := seedTestUser(db, "otherbarber@example.com", "barber")
	otherShop := seedOwnedShop(db, "Theirs", otherBarber.ID, true)
	foreignSvc := seedService(db, otherShop.ID, "Foreign Cut", 30, 30)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", "/api/barber/services/"+foreignSvc.ID.String(), nil, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 touching another shop's service, got %d", w.Code)
	}
}

func TestGetShopBookings(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "queue@example.com", "barber")
	shop := seedOwnedShop(db, "Queue Shop", barber.ID, true)
	svc := seedService(db, shop.ID, "Cut", 30, 30)
	customer, _ := seedTestUser(db, "queuecustomer@example.com", "customer")
	seedBooking(db, customer.ID, shop.ID, svc.ID, models.BookingStatusConfirmed)
	seedBooking(db, customer.ID, shop.ID, svc.ID, models.BookingStatusCancelled)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/barber/bookings", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(parseResponse(w)["bookings"].([]interface{})) != 2 {
		t.Error("expected both bookings without a filter")
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("GET", "/api/barber/bookings?status=confirmed", nil, token))
	bookings := parseResponse(w2)["bookings"].([]interface{})
	if len(bookings) != 1 {
		t.Fatalf("expected 1 confirmed booking, got %d", len(bookings))
	}
	if bookings[0].(map[string]interface{})["status"] != "confirmed" {
		t.Error("status filter returned the wrong booking")
	}
}

func TestUpdateBookingStatusDecline(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "decline@example.com", "barber")
	shop := seedOwnedShop(db, "Decline Shop", barber.ID, true)
	svc := seedService(db, shop.ID, "Cut", 30, 30)
	customer, _ := seedTestUser(db, "declined@example.com", "customer")
	booking := seedBooking(db, customer.ID, shop.ID, svc.ID, models.BookingStatusConfirmed)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/bookings/"+booking.ID.String()+"/status", map[string]interface{}{
		"status": "cancelled",
	}, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["status"] != "cancelled" {
		t.Error("expected status cancelled")
	}

	// The declined booking drops out of the confirmed filter
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("GET", "/api/barber/bookings?status=confirmed", nil, token))
	if len(parseResponse(w2)["bookings"].([]interface{})) != 0 {
		t.Error("cancelled booking still listed as confirmed")
	}
}

func TestUpdateBookingStatusAcceptPending(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "accept@example.com", "barber")
	shop := seedOwnedShop(db, "Accept Shop", barber.ID, true)
	svc := seedService(db, shop.ID, "Cut", 30, 30)
	customer, _ := seedTestUser(db, "accepted@example.com", "customer")
	booking := seedBooking(db, customer.ID, shop.ID, svc.ID, models.BookingStatusPending)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/bookings/"+booking.ID.String()+"/status", map[string]interface{}{
		"status": "confirmed",
	}, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateBookingStatusInvalidValue(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "badstatus@example.com", "barber")
	shop := seedOwnedShop(db, "Bad Status Shop", barber.ID, true)
	svc := seedService(db, shop.ID, "Cut", 30, 30)
	customer, _ := seedTestUser(db, "badstatuscust@example.com", "customer")
	booking := seedBooking(db, customer.ID, shop.ID, svc.ID, models.BookingStatusConfirmed)
	router := setupBarberRouter(db)

	for _, status := range []string{"pending", "done", ""} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authRequest("PUT", "/api/barber/bookings/"+booking.ID.String()+"/status", map[string]interface{}{
			"status": status,
		}, token))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %q: expected 400, got %d", status, w.Code)
		}
	}
}

func TestUpdateBookingStatusOtherShop(t *testing.T) {
	db := freshDB()
	barber, token := seedTestUser(db, "notmine@example.com", "barber")
	seedOwnedShop(db, "Mine 2", barber.ID, true)

	otherBarber, _ := seedTestUser(db, "othershop@example.com", "barber")
	otherShop := seedOwnedShop(db, "Theirs 2", otherBarber.ID, true)
	svc := seedService(db, otherShop.ID, "Cut", 30, 30)
	customer, _ := seedTestUser(db, "victim@example.com", "customer")
	booking := seedBooking(db, customer.ID, otherShop.ID, svc.ID, models.BookingStatusConfirmed)
	router := setupBarberRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/barber/bookings/"+booking.ID.String()+"/status", map[string]interface{}{
		"status": "cancelled",
	}, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for another shop's booking, got %d", w.Code)
	}
}
