package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"DoctorsPortal/config/authorization"
	"DoctorsPortal/config/jwt"
	"DoctorsPortal/controllers"
	"DoctorsPortal/models"
	"DoctorsPortal/repository/repositorytest"
	"DoctorsPortal/role"
	"DoctorsPortal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	router    *gin.Engine
	tokens    *jwt.Manager
	options   *repositorytest.Options
	bookings  *repositorytest.Bookings
	users     *repositorytest.Users
	doctors   *repositorytest.Doctors
	payments  *repositorytest.Payments
	processor *repositorytest.Processor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		tokens: jwt.NewManager("test-secret", 24*time.Hour),
		options: &repositorytest.Options{Catalog: []models.AppointmentOption{
			{Name: "Cleaning", Price: 50, Slots: []string{"9:00", "10:00"}},
		}},
		bookings:  &repositorytest.Bookings{Unique: true},
		users:     &repositorytest.Users{},
		doctors:   &repositorytest.Doctors{},
		payments:  &repositorytest.Payments{},
		processor: &repositorytest.Processor{Secret: "pi_secret_123"},
	}
	f.payments.Bookings = f.bookings
	h := &controllers.Handlers{
		Appointments: services.NewAppointmentService(f.options, f.bookings, nil, 0),
		Bookings:     services.NewBookingService(f.bookings),
		Users:        services.NewUserService(f.users, f.tokens),
		Doctors:      services.NewDoctorService(f.doctors),
		Payments:     services.NewPaymentService(f.payments, f.bookings, &repositorytest.DirectTx{}, f.processor),
		Auth:         authorization.JWTAuth(f.tokens),
		Admin:        authorization.RequireAdmin(f.users),
	}
	f.router = gin.New()
	Routes(f.router, h)
	return f
}

func (f *fixture) addUser(email, r string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.users.Docs = append(f.users.Docs, models.User{ID: id, Email: email, Role: r})
	return id
}

func (f *fixture) bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := f.tokens.GenerateToken(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *fixture) do(t *testing.T, method, path, auth string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	out := map[string]interface{}{}
	if rec.Header().Get("Content-Type") != "" && rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func booking(email string) map[string]interface{} {
	return map[string]interface{}{
		"appointmentDate": "2024-01-05",
		"treatmentName":   "Cleaning",
		"email":           email,
		"slot":            "9:00",
		"price":           50,
	}
}

func TestHome(t *testing.T) {
	f := newFixture(t)
	rec, _ := f.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor Portal Server")
}

func TestAppOptions_RemovesBookedSlot(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, http.MethodPost, "/bookings", "", booking("a@example.com"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["acknowledged"])

	rec, body = f.do(t, http.MethodGet, "/appOptions?date=2024-01-05", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	options := body["options"].([]interface{})
	require.Len(t, options, 1)
	cleaning := options[0].(map[string]interface{})
	assert.Equal(t, "Cleaning", cleaning["name"])
	assert.Equal(t, []interface{}{"10:00"}, cleaning["slots"])

	_, body = f.do(t, http.MethodGet, "/appOptions?date=2024-01-06", "", nil)
	other := body["options"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"9:00", "10:00"}, other["slots"])
}

func TestAppOptions_MissingDate(t *testing.T) {
	f := newFixture(t)
	rec, body := f.do(t, http.MethodGet, "/appOptions", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestAppointmentSpecialty(t *testing.T) {
	f := newFixture(t)
	_, body := f.do(t, http.MethodGet, "/appointmentSpecialty", "", nil)
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "Cleaning"}}, body["specialties"])
}

func TestCreateBooking_SecondIsRefused(t *testing.T) {
	f := newFixture(t)

	_, first := f.do(t, http.MethodPost, "/bookings", "", booking("a@example.com"))
	assert.Equal(t, true, first["acknowledged"])
	assert.NotEmpty(t, first["insertedId"])

	rec, second := f.do(t, http.MethodPost, "/bookings", "", booking("a@example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, second["success"])
	assert.Equal(t, false, second["acknowledged"])
	assert.Equal(t, "You already have a booking on 2024-01-05", second["message"])
	assert.Len(t, f.bookings.Docs, 1)
}

func TestCreateBooking_Invalid(t *testing.T) {
	f := newFixture(t)
	rec, body := f.do(t, http.MethodPost, "/bookings", "", map[string]interface{}{"email": "a@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, f.bookings.Docs)
}

func TestFetchBookings_TokenRules(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/bookings", "", booking("a@example.com"))

	rec, _ := f.do(t, http.MethodGet, "/bookings?email=a@example.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/bookings?email=a@example.com", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	wrongSecret, err := jwt.NewManager("other", time.Hour).GenerateToken("a@example.com")
	require.NoError(t, err)
	rec, _ = f.do(t, http.MethodGet, "/bookings?email=a@example.com", "Bearer "+wrongSecret, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/bookings?email=a@example.com", f.bearer(t, "b@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body := f.do(t, http.MethodGet, "/bookings?email=a@example.com", f.bearer(t, "a@example.com"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["bookings"], 1)
}

func TestPayment_RoundTrip(t *testing.T) {
	f := newFixture(t)
	_, created := f.do(t, http.MethodPost, "/bookings", "", booking("a@example.com"))
	id := created["insertedId"].(string)

	rec, body := f.do(t, http.MethodPost, "/create-payment-intent", "", map[string]interface{}{"price": 50})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pi_secret_123", body["clientSecret"])
	assert.Equal(t, int64(5000), f.processor.Amount)

	rec, body = f.do(t, http.MethodPost, "/payments", "", map[string]interface{}{
		"bookingId":     id,
		"transactionId": "pi_123",
		"amount":        50,
		"email":         "a@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["insertedId"])

	rec, body = f.do(t, http.MethodGet, "/booking/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := body["booking"].(map[string]interface{})
	assert.Equal(t, true, got["paid"])
	assert.Equal(t, "pi_123", got["transactionId"])

	rec, _ = f.do(t, http.MethodPost, "/payments", "", map[string]interface{}{
		"bookingId":     id,
		"transactionId": "pi_456",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, f.payments.Docs, 1)
}

func TestPaymentIntent_RejectsNonPositivePrice(t *testing.T) {
	f := newFixture(t)
	rec, _ := f.do(t, http.MethodPost, "/create-payment-intent", "", map[string]interface{}{"price": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchBookingByID_Errors(t *testing.T) {
	f := newFixture(t)
	rec, _ := f.do(t, http.MethodGet, "/booking/zzz", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = f.do(t, http.MethodGet, "/booking/"+primitive.NewObjectID().Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersAndTokens(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, http.MethodGet, "/jwt?email=a@example.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "", body["token"])

	_, body = f.do(t, http.MethodPost, "/users", "", map[string]interface{}{"name": "A", "email": "a@example.com"})
	assert.Equal(t, true, body["acknowledged"])

	_, body = f.do(t, http.MethodGet, "/users", "", nil)
	assert.Len(t, body["users"], 1)

	rec, body = f.do(t, http.MethodGet, "/jwt?email=a@example.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["token"].(string)
	claims, err := f.tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestAdminGate(t *testing.T) {
	f := newFixture(t)
	target := f.addUser("p@example.com", role.None)
	f.addUser("other@example.com", role.None)
	f.addUser("admin@example.com", role.Admin)

	rec, _ := f.do(t, http.MethodPut, "/users/admin/"+target.Hex(), f.bearer(t, "other@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, role.None, f.users.Docs[0].Role)

	_, body := f.do(t, http.MethodGet, "/users/admin/p@example.com", "", nil)
	assert.Equal(t, false, body["isAdmin"])

	rec, _ = f.do(t, http.MethodPut, "/users/admin/"+target.Hex(), f.bearer(t, "admin@example.com"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, role.Admin, f.users.Docs[0].Role)

	_, body = f.do(t, http.MethodGet, "/users/admin/p@example.com", "", nil)
	assert.Equal(t, true, body["isAdmin"])
}

func TestDoctors_AdminOnly(t *testing.T) {
	f := newFixture(t)
	f.addUser("admin@example.com", role.Admin)
	f.addUser("p@example.com", role.None)
	doctor := map[string]interface{}{"name": "Dr. A", "specialty": "Cleaning"}

	rec, _ := f.do(t, http.MethodPost, "/doctors", "", doctor)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = f.do(t, http.MethodGet, "/doctors", f.bearer(t, "p@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := f.bearer(t, "admin@example.com")
	rec, body := f.do(t, http.MethodPost, "/doctors", admin, doctor)
	require.Equal(t, http.StatusOK, rec.Code)
	id := body["insertedId"].(string)

	_, body = f.do(t, http.MethodGet, "/doctors", admin, nil)
	assert.Len(t, body["doctors"], 1)

	rec, _ = f.do(t, http.MethodDelete, "/doctors/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = f.do(t, http.MethodDelete, "/doctors/"+id, admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
