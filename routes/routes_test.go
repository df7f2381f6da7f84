package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"
	"time"

	"epoch-backend/config"
	"epoch-backend/controllers"
	"epoch-backend/models"
	"epoch-backend/routes"
	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	authService := services.NewAuthService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	galleryService := services.NewGalleryService(db)
	reviewService := services.NewReviewService(db)
	storageService := services.NewStorageService(t.TempDir(), "http://localhost:8080")

	r := routes.SetupRouter(
		controllers.NewAuthController(authService, testSecret, time.Hour),
		controllers.NewAvailabilityController(availabilityService),
		controllers.NewBookingController(bookingService),
		controllers.NewGalleryController(galleryService, storageService),
		controllers.NewReviewController(reviewService),
		controllers.NewAdminController(galleryService, reviewService, bookingService, availabilityService),
		testSecret,
	)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("picnic123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{FullName: "Test User", Email: email, Password: string(hash), IsAdmin: isAdmin}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.IsAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndContent(t *testing.T) {
	r, _ := newTestServer(t)

	if w := doJSON(r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health = %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/content", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("content = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			BasePrice float64        `json:"base_price"`
			AddOns    []models.AddOn `json:"add_ons"`
			Occasions []string       `json:"occasions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.BasePrice != 1200 || len(resp.Data.AddOns) != 4 {
		t.Errorf("catalog = %+v", resp.Data)
	}
}

func TestBookingEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	db.Create(&models.AvailabilityDay{Date: "2026-02-14", IsAvailable: true, MaxBookings: 1})

	payload := gin.H{
		"name":     "Sipho K",
		"email":    "sipho@example.com",
		"phone":    "073 715 7352",
		"date":     "2026-02-14",
		"time":     "18:00",
		"guests":   2,
		"occasion": "Proposal",
		"add_ons":  []string{"grazing", "fruit"},
	}

	w := doJSON(r, http.MethodPost, "/api/bookings", "", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			Booking      models.Booking `json:"booking"`
			WhatsAppLink string         `json:"whatsapp_link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Booking.TotalAmount != 1700 || resp.Data.Booking.Status != models.BookingStatusPending {
		t.Errorf("booking = %+v", resp.Data.Booking)
	}
	if resp.Data.WhatsAppLink == "" {
		t.Error("whatsapp_link missing")
	}

	// the day is now full: the race loser contract is a 409 with no link
	if w := doJSON(r, http.MethodPost, "/api/bookings", "", payload); w.Code != http.StatusConflict {
		t.Errorf("second booking = %d, want 409: %s", w.Code, w.Body)
	}

	if w := doJSON(r, http.MethodPost, "/api/bookings", "", gin.H{"name": "x"}); w.Code != http.StatusBadRequest {
		t.Errorf("invalid payload = %d, want 400", w.Code)
	}
}

func TestPublicReadsHideUnapproved(t *testing.T) {
	r, db := newTestServer(t)

	reviewSvc := services.NewReviewService(db)
	visible, err := reviewSvc.Create("Thandi", "the sunset setup was unforgettable", 5, nil)
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if _, err := reviewSvc.Create("Troll", "this one gets hidden by an admin", 1, nil); err != nil {
		t.Fatalf("create review: %v", err)
	}
	var all []models.Review
	db.Find(&all)
	for _, rv := range all {
		if rv.ID != visible.ID {
			reviewSvc.SetApproval(rv.ID, false)
		}
	}

	w := doJSON(r, http.MethodGet, "/api/reviews", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reviews = %d", w.Code)
	}
	var resp struct {
		Data []models.Review `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != visible.ID {
		t.Errorf("public reviews = %+v, want only the approved one", resp.Data)
	}
}

func TestReviewEndpointValidation(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/reviews", "", gin.H{
		"author_name": "Thandi",
		"content":     "too short",
		"rating":      5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("short content = %d, want 400: %s", w.Code, w.Body)
	}

	w = doJSON(r, http.MethodPost, "/api/reviews", "", gin.H{
		"author_name": "Thandi",
		"content":     "a wonderful golden-hour picnic",
		"rating":      5,
	})
	if w.Code != http.StatusCreated {
		t.Errorf("valid review = %d, want 201: %s", w.Code, w.Body)
	}
}

func TestAdminGate(t *testing.T) {
	r, db := newTestServer(t)
	guest := seedUser(t, db, "guest@example.com", false)
	admin := seedUser(t, db, "admin@example.com", true)

	if w := doJSON(r, http.MethodGet, "/api/admin/summary", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous = %d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/admin/summary", tokenFor(t, guest), nil); w.Code != http.StatusForbidden {
		t.Errorf("non-admin = %d, want 403", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/admin/summary", tokenFor(t, admin), nil); w.Code != http.StatusOK {
		t.Errorf("admin = %d, want 200: %s", w.Code, w.Body)
	}
}

func TestAdminModerationEndpoints(t *testing.T) {
	r, db := newTestServer(t)
	admin := seedUser(t, db, "admin@example.com", true)
	token := tokenFor(t, admin)

	reviewSvc := services.NewReviewService(db)
	review, err := reviewSvc.Create("Thandi", "the sunset setup was unforgettable", 5, nil)
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	hide := gin.H{"is_approved": false}
	if w := doJSON(r, http.MethodPatch, "/api/reviews-nope", token, hide); w.Code != http.StatusNotFound {
		t.Errorf("unknown route = %d, want 404", w.Code)
	}

	path := "/api/admin/reviews/" + itoa(review.ID) + "/approval"
	if w := doJSON(r, http.MethodPatch, path, token, hide); w.Code != http.StatusOK {
		t.Errorf("hide review = %d: %s", w.Code, w.Body)
	}

	var reloaded models.Review
	db.First(&reloaded, review.ID)
	if reloaded.IsApproved {
		t.Error("review still approved after hide")
	}

	if w := doJSON(r, http.MethodDelete, "/api/admin/reviews/"+itoa(review.ID), token, nil); w.Code != http.StatusOK {
		t.Errorf("delete review = %d: %s", w.Code, w.Body)
	}
	if w := doJSON(r, http.MethodDelete, "/api/admin/reviews/"+itoa(review.ID), token, nil); w.Code != http.StatusNotFound {
		t.Errorf("delete again = %d, want 404", w.Code)
	}
}

func TestAdminAvailabilityUpsert(t *testing.T) {
	r, db := newTestServer(t)
	admin := seedUser(t, db, "admin@example.com", true)
	token := tokenFor(t, admin)

	w := doJSON(r, http.MethodPut, "/api/admin/availability/2026-12-24", token, gin.H{
		"is_available": true,
		"max_bookings": 2,
		"notes":        "christmas eve",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert = %d: %s", w.Code, w.Body)
	}

	check := doJSON(r, http.MethodGet, "/api/availability/2026-12-24", "", nil)
	if check.Code != http.StatusOK {
		t.Fatalf("check = %d", check.Code)
	}
	var resp struct {
		Data services.AvailabilityInfo `json:"data"`
	}
	if err := json.Unmarshal(check.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Data.Known || !resp.Data.Available || resp.Data.Remaining != 2 {
		t.Errorf("availability = %+v", resp.Data)
	}
}

func TestAuthEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"full_name": "Thandi M",
		"email":     "thandi@example.com",
		"password":  "picnic123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("register returned no token")
	}

	if w := doJSON(r, http.MethodGet, "/api/auth/me", resp.Data.Token, nil); w.Code != http.StatusOK {
		t.Errorf("me = %d: %s", w.Code, w.Body)
	}
	if w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "thandi@example.com", "password": "wrong",
	}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad login = %d, want 401", w.Code)
	}
}

func TestGalleryUploadEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	user := seedUser(t, db, "guest@example.com", false)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="photo"; filename="picnic.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	mw.WriteField("caption", "our proposal picnic")
	mw.Close()

	// anonymous uploads are rejected
	anon := httptest.NewRequest(http.MethodPost, "/api/gallery", bytes.NewReader(body.Bytes()))
	anon.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, anon)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous upload = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", bytes.NewReader(body.Bytes()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload = %d: %s", w.Code, w.Body)
	}

	var item models.GalleryItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	if item.IsApproved {
		t.Error("fresh upload should be pending approval")
	}
	if item.UserID != user.ID {
		t.Errorf("owner = %d, want %d", item.UserID, user.ID)
	}

	// pending uploads stay out of the public gallery
	pub := doJSON(r, http.MethodGet, "/api/gallery", "", nil)
	var resp struct {
		Data []models.GalleryItem `json:"data"`
	}
	if err := json.Unmarshal(pub.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("public gallery = %d items, want 0", len(resp.Data))
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
