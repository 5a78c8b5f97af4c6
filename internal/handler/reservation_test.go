package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

type fakeRoomStore struct{ rooms map[uint64]model.Room }

func (f *fakeRoomStore) GetByID(_ context.Context, id uint64) (model.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return rm, nil
}

type fakeReservationStore struct {
	mu     sync.Mutex
	nextID uint64
	rows   []model.Reservation
}

func (f *fakeReservationStore) CreateIfAvailable(_ context.Context, res *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rows {
		if existing.RoomID == res.RoomID &&
			model.Overlaps(existing.CheckIn, existing.CheckOut, res.CheckIn, res.CheckOut) {
			return repository.ErrConflict
		}
	}
	f.nextID++
	res.ID = f.nextID
	f.rows = append(f.rows, *res)
	return nil
}

// newCreateContext builds an echo context for POST /v1/reservations
// with the given JSON body and an authenticated user, the way JWTAuth
// leaves it (JWT numbers decode as float64).
func newCreateContext(t *testing.T, body string, userID float64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", model.RoleCustomer)
	return c, rec
}

func newTestHandler(existing ...model.Reservation) (*ReservationHandler, *fakeReservationStore) {
	store := &fakeReservationStore{rows: existing, nextID: uint64(len(existing))}
	rooms := &fakeRoomStore{rooms: map[uint64]model.Room{
		7: {ID: 7, HotelID: 1, RoomNumber: "101", RoomType: model.RoomTypeDouble, Capacity: 2},
	}}
	return &ReservationHandler{Admission: service.NewAdmissionService(rooms, store)}, store
}

func day(n int) time.Time {
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

func TestCreateReservationStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "accepted",
			body:       `{"room_id":7,"check_in":"2026-01-01","check_out":"2026-01-03"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "back-to-back with existing stay",
			body:       `{"room_id":7,"check_in":"2026-01-12","check_out":"2026-01-14"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "overlapping existing stay",
			body:       `{"room_id":7,"check_in":"2026-01-11","check_out":"2026-01-13"}`,
			wantStatus: http.StatusConflict,
			wantErr:    "already booked",
		},
		{
			name:       "same-day stay",
			body:       `{"room_id":7,"check_in":"2026-01-05","check_out":"2026-01-05"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "before check-out",
		},
		{
			name:       "inverted stay",
			body:       `{"room_id":7,"check_in":"2026-01-20","check_out":"2026-01-15"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "before check-out",
		},
		{
			name:       "unknown room",
			body:       `{"room_id":999,"check_in":"2026-01-01","check_out":"2026-01-03"}`,
			wantStatus: http.StatusNotFound,
			wantErr:    "room not found",
		},
		{
			name:       "malformed date",
			body:       `{"room_id":7,"check_in":"01/05/2026","check_out":"2026-01-07"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "YYYY-MM-DD",
		},
		{
			name:       "missing room",
			body:       `{"check_in":"2026-01-01","check_out":"2026-01-03"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "room_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(model.Reservation{
				ID: 1, UserID: 42, RoomID: 7, CheckIn: day(10), CheckOut: day(12),
			})
			c, rec := newCreateContext(t, tt.body, 9)
			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				assert.Contains(t, rec.Body.String(), tt.wantErr)
			}
		})
	}
}

// A user_id smuggled into the payload must be ignored: the persisted
// reservation always belongs to the authenticated caller.
func TestCreateReservationIgnoresPayloadUser(t *testing.T) {
	h, store := newTestHandler()
	body := `{"room_id":7,"check_in":"2026-01-01","check_out":"2026-01-03","user_id":999,"user":999}`
	c, rec := newCreateContext(t, body, 9)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.rows, 1)
	assert.Equal(t, uint64(9), store.rows[0].UserID)
	assert.Contains(t, rec.Body.String(), `"user_id":9`)
}

func TestCreateReservationRequiresIdentity(t *testing.T) {
	h, store := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations",
		strings.NewReader(`{"room_id":7,"check_in":"2026-01-01","check_out":"2026-01-03"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no user_id in context

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.rows)
}

func TestParseCandidate(t *testing.T) {
	cand, reason := parseCandidate(createReservationReq{
		RoomID: 7, CheckIn: "2026-01-01", CheckOut: "2026-01-03",
	})
	require.Empty(t, reason)
	assert.Equal(t, uint64(7), cand.RoomID)
	assert.Equal(t, day(1), cand.CheckIn)
	assert.Equal(t, day(3), cand.CheckOut)

	// Ordering is not parseCandidate's job; the admission service owns
	// that failure so the error taxonomy has one home.
	_, reason = parseCandidate(createReservationReq{RoomID: 7, CheckIn: "2026-01-09", CheckOut: "2026-01-02"})
	assert.Empty(t, reason)
}
