package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	"github.com/hvrSSB04/ssb-backend/internal/handlers"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/models"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
	ucAppointment "github.com/hvrSSB04/ssb-backend/internal/usecase/appointment"
	ucBarber "github.com/hvrSSB04/ssb-backend/internal/usecase/barber"
)

// --------- in-memory stores ---------

type memBarberRepo struct {
	barbers []*models.Barber
}

func (r *memBarberRepo) Create(_ context.Context, b *models.Barber) error {
	for _, existing := range r.barbers {
		if existing.Email == b.Email {
			return httperr.ErrBusiness("email_already_exists")
		}
	}
	cp := *b
	r.barbers = append(r.barbers, &cp)
	return nil
}

func (r *memBarberRepo) FindByEmail(_ context.Context, email string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.Email == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *memBarberRepo) FindByIdentifier(_ context.Context, identifier string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.FirstName == identifier || b.LastName == identifier || b.Email == identifier {
			cp := *b
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *memBarberRepo) FindByFullName(_ context.Context, name string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.FullName() == name {
			cp := *b
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *memBarberRepo) List(_ context.Context) ([]models.Barber, error) {
	out := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		out = append(out, *b)
	}
	return out, nil
}

type memAppointmentRepo struct {
	byID  map[string]*models.Appointment
	order []string
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{byID: make(map[string]*models.Appointment)}
}

func (r *memAppointmentRepo) Create(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.byID[ap.ID] = &cp
	r.order = append(r.order, ap.ID)
	return nil
}

func (r *memAppointmentRepo) FindByID(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *memAppointmentRepo) FindByBarber(_ context.Context, name string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, id := range r.order {
		if ap, ok := r.byID[id]; ok && ap.Barber == name {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) FindByEmail(_ context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, id := range r.order {
		if ap, ok := r.byID[id]; ok && ap.Email == email {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) SetApproved(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	ap.Approved = true
	cp := *ap
	return &cp, nil
}

func (r *memAppointmentRepo) DeleteAndReturn(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	delete(r.byID, id)
	return ap, nil
}

// --------- router wiring ---------

func newTestRouter(t *testing.T) (*gin.Engine, *notify.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	barberRepo := &memBarberRepo{}
	appointmentRepo := newMemAppointmentRepo()

	hub := notify.NewHub()
	dispatcher := notify.NewDispatcher(hub)

	authHandler := handlers.NewAuthHandler(
		ucBarber.NewRegister(barberRepo),
		ucBarber.NewLogin(barberRepo),
		cfg,
	)
	barberHandler := handlers.NewBarberHandler(ucBarber.NewList(barberRepo))
	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, barberRepo, dispatcher),
		ucAppointment.NewApproveAppointment(appointmentRepo, dispatcher),
		ucAppointment.NewRejectAppointment(appointmentRepo, dispatcher),
		ucAppointment.NewListForBarber(appointmentRepo),
		ucAppointment.NewListForCustomer(appointmentRepo),
		cfg,
	)
	wsHandler := handlers.NewWSHandler(hub, cfg)

	r := gin.New()
	r.POST("/create-account", authHandler.Register)
	r.POST("/barber-login", authHandler.Login)
	r.GET("/barbers", barberHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/barber-appointments/:barberName", appointmentHandler.ListForBarber)
	r.GET("/user-appointments/:email", appointmentHandler.ListForCustomer)
	r.PUT("/appointments/:id/approve", appointmentHandler.Approve)
	r.DELETE("/appointments/:id", appointmentHandler.Reject)
	r.GET("/ws", wsHandler.Handle)

	return r, hub
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody() map[string]any {
	return map[string]any{
		"firstName":   "John",
		"lastName":    "Smith",
		"email":       "j@x.com",
		"phone":       "555-0101",
		"shopName":    "Smith Cuts",
		"address":     "1 Main St",
		"experience":  "3-5 yrs",
		"specialties": []string{"Fade"},
		"password":    "pw123",
	}
}

func bookingBody(email string) map[string]any {
	return map[string]any{
		"name":    "Jane",
		"email":   email,
		"phone":   "555-0202",
		"service": "Fade",
		"barber":  "John Smith",
		"date":    "2026-09-04",
		"time":    "14:00",
	}
}

// --------- REST flows ---------

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-account", registerBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// credential never leaves the server
	assert.NotContains(t, w.Body.String(), "pw123")
	assert.NotContains(t, w.Body.String(), "password")

	// duplicate email is rejected and no second record appears
	w = doJSON(t, r, http.MethodPost, "/create-account", registerBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	w = doJSON(t, r, http.MethodGet, "/barbers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 1)

	w = doJSON(t, r, http.MethodPost, "/barber-login", map[string]any{
		"barbername": "j@x.com",
		"password":   "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, "John", login["firstName"])
	assert.Equal(t, "Smith", login["lastName"])
	assert.Equal(t, "j@x.com", login["email"])
	assert.Equal(t, "Smith Cuts", login["shopName"])
	assert.NotEmpty(t, login["token"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-account", registerBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/barber-login", map[string]any{
		"barbername": "j@x.com",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = doJSON(t, r, http.MethodPost, "/barber-login", map[string]any{
		"barbername": "nobody",
		"password":   "pw123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBarberDirectoryCards(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-account", registerBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/barbers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 1)

	assert.Equal(t, "John Smith", cards[0]["name"])
	assert.Equal(t, "3-5 yrs", cards[0]["role"])
	assert.Equal(t, "3-5 yrs of experience", cards[0]["experience"])
	assert.Equal(t, "https://placehold.co/300x300/e2e8f0/475569?text=John", cards[0]["image"])
}

func TestCreateAppointment(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ap map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.NotEmpty(t, ap["id"])
	assert.Equal(t, false, ap["approved"])
	assert.Equal(t, "John Smith", ap["barber"])
	assert.NotEmpty(t, ap["notificationToken"])
}

func TestCreateAppointmentMissingField(t *testing.T) {
	r, _ := newTestRouter(t)

	body := bookingBody("jane@x.com")
	delete(body, "service")

	w := doJSON(t, r, http.MethodPost, "/appointments", body)
	// schema failures surface as a server error on this endpoint
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBarberAppointmentsPartition(t *testing.T) {
	r, _ := newTestRouter(t)

	var ids []string
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody(email))
		require.Equal(t, http.StatusCreated, w.Code)
		var ap map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
		ids = append(ids, ap["id"].(string))
	}

	w := doJSON(t, r, http.MethodPut, "/appointments/"+ids[1]+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/barber-appointments/John%20Smith", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Pending   []models.Appointment `json:"pendingAppointments"`
		Confirmed []models.Appointment `json:"confirmedAppointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Len(t, result.Pending, 2)
	assert.Len(t, result.Confirmed, 1)
	assert.Equal(t, ids[1], result.Confirmed[0].ID)
	for _, ap := range append(result.Pending, result.Confirmed...) {
		assert.Equal(t, "John Smith", ap.Barber)
	}
}

func TestUserAppointments(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user-appointments/jane@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var apps []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "jane@x.com", apps[0].Email)

	assert.NotEmpty(t, w.Header().Get("X-Notification-Token"))
}

func TestApproveNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/appointments/missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment not found")
}

func TestRejectAppointment(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	var ap map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	id := ap["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/appointments/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment deleted successfully")

	// the record is gone; a second reject finds nothing
	w = doJSON(t, r, http.MethodDelete, "/appointments/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user-appointments/jane@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

// --------- websocket flows ---------

type wsTestFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readFrame(t *testing.T, dec *json.Decoder) wsTestFrame {
	t.Helper()
	var f wsTestFrame
	require.NoError(t, dec.Decode(&f))
	return f
}

func TestWSBarberReceivesNewAppointment(t *testing.T) {
	r, _ := newTestRouter(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	w := doJSON(t, r, http.MethodPost, "/create-account", registerBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/barber-login", map[string]any{
		"barbername": "j@x.com",
		"password":   "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	barberToken := login["token"].(string)

	conn := dialWS(t, srv)
	dec := json.NewDecoder(conn)

	require.NoError(t, websocket.JSON.Send(conn, map[string]any{
		"type":  "barber",
		"token": barberToken,
	}))

	joined := readFrame(t, dec)
	require.Equal(t, "joined", joined.Event)
	assert.Contains(t, string(joined.Data), "barber:John Smith")

	w = doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	event := readFrame(t, dec)
	assert.Equal(t, "new_appointment", event.Event)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(event.Data, &ap))
	assert.Equal(t, "jane@x.com", ap.Email)
	assert.False(t, ap.Approved)
}

func TestWSCustomerReceivesStatusChanges(t *testing.T) {
	r, _ := newTestRouter(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	var ap map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	id := ap["id"].(string)
	customerToken := ap["notificationToken"].(string)

	conn := dialWS(t, srv)
	dec := json.NewDecoder(conn)

	require.NoError(t, websocket.JSON.Send(conn, map[string]any{
		"type":  "user",
		"token": customerToken,
	}))
	require.Equal(t, "joined", readFrame(t, dec).Event)

	w = doJSON(t, r, http.MethodPut, "/appointments/"+id+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	event := readFrame(t, dec)
	require.Equal(t, "appointment_status_changed", event.Event)

	var payload struct {
		ID          string             `json:"id"`
		Status      string             `json:"status"`
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	assert.Equal(t, id, payload.ID)
	assert.Equal(t, "approved", payload.Status)
	assert.True(t, payload.Appointment.Approved)
}

func TestWSRejectUsesSnapshot(t *testing.T) {
	r, _ := newTestRouter(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookingBody("jane@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	var ap map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	id := ap["id"].(string)
	customerToken := ap["notificationToken"].(string)

	conn := dialWS(t, srv)
	dec := json.NewDecoder(conn)

	require.NoError(t, websocket.JSON.Send(conn, map[string]any{
		"type":  "user",
		"token": customerToken,
	}))
	require.Equal(t, "joined", readFrame(t, dec).Event)

	w = doJSON(t, r, http.MethodDelete, "/appointments/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the record is already gone, the event derives from the snapshot
	event := readFrame(t, dec)
	require.Equal(t, "appointment_status_changed", event.Event)

	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	assert.Equal(t, id, payload.ID)
	assert.Equal(t, "rejected", payload.Status)
}

func TestWSRejectsBadJoinToken(t *testing.T) {
	r, _ := newTestRouter(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	conn := dialWS(t, srv)
	dec := json.NewDecoder(conn)

	require.NoError(t, websocket.JSON.Send(conn, map[string]any{
		"type":  "user",
		"token": "not-a-token",
	}))

	frame := readFrame(t, dec)
	assert.Equal(t, "error", frame.Event)
	assert.Contains(t, string(frame.Data), "invalid or missing join token")
}
