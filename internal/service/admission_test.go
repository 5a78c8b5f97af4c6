package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// fakeRoomStore serves rooms from a map, mirroring RoomRepo.GetByID's
// sentinel on a miss.
type fakeRoomStore struct {
	rooms map[uint64]model.Room
}

func (f *fakeRoomStore) GetByID(_ context.Context, id uint64) (model.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return rm, nil
}

// fakeReservationStore keeps reservations in memory and applies the
// same half-open overlap predicate the SQL store uses.  The mutex
// makes the check-and-insert atomic, matching the transactional
// guarantee of ReservationRepo.CreateIfAvailable.
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

func day(n int) time.Time {
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

const roomID = uint64(7)

func newTestService(existing ...model.Reservation) (*AdmissionService, *fakeReservationStore) {
	store := &fakeReservationStore{rows: existing, nextID: uint64(len(existing))}
	rooms := &fakeRoomStore{rooms: map[uint64]model.Room{
		roomID: {ID: roomID, HotelID: 1, RoomNumber: "101", RoomType: model.RoomTypeDouble, Capacity: 2},
	}}
	svc := NewAdmissionService(rooms, store)
	svc.Now = func() time.Time { return time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func existingStay(in, out int) model.Reservation {
	return model.Reservation{ID: 1, UserID: 42, RoomID: roomID, CheckIn: day(in), CheckOut: day(out)}
}

func TestCreateReservationInvalidInterval(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
	}{
		{"same day", 5, 5},
		{"inverted", 20, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An overlapping row is present so the test also proves the
			// interval check short-circuits before any conflict lookup.
			svc, store := newTestService(existingStay(1, 30))
			_, err := svc.CreateReservation(context.Background(), 9,
				model.CandidateBooking{RoomID: roomID, CheckIn: day(tt.in), CheckOut: day(tt.out)})
			assert.ErrorIs(t, err, ErrInvalidInterval)
			assert.Len(t, store.rows, 1, "nothing may be inserted on failure")
		})
	}
}

func TestCreateReservationConflicts(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
		wantErr error
	}{
		{"overlapping the middle", 11, 13, ErrRoomUnavailable},
		{"identical interval", 10, 12, ErrRoomUnavailable},
		{"covering the stay", 9, 13, ErrRoomUnavailable},
		{"back to back after", 12, 14, nil},
		{"back to back before", 8, 10, nil},
		{"disjoint later", 20, 22, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(existingStay(10, 12))
			res, err := svc.CreateReservation(context.Background(), 9,
				model.CandidateBooking{RoomID: roomID, CheckIn: day(tt.in), CheckOut: day(tt.out)})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, store.rows, 1)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, res.ID)
			assert.Len(t, store.rows, 2)
		})
	}
}

func TestCreateReservationUnknownRoom(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.CreateReservation(context.Background(), 9,
		model.CandidateBooking{RoomID: 999, CheckIn: day(1), CheckOut: day(3)})
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	assert.Empty(t, store.rows)
}

func TestCreateReservationOwnershipAndTimestamp(t *testing.T) {
	svc, store := newTestService()
	res, err := svc.CreateReservation(context.Background(), 77,
		model.CandidateBooking{RoomID: roomID, CheckIn: day(1), CheckOut: day(3)})
	require.NoError(t, err)

	assert.Equal(t, uint64(77), res.UserID, "owner is the requesting user")
	assert.Equal(t, svc.Now().UTC(), res.CreatedAt)
	require.Len(t, store.rows, 1)
	assert.Equal(t, res, store.rows[0])
}

// Re-running the same rejected candidate against unchanged state must
// keep yielding the same decision; the check reads only the
// reservation set.
func TestCreateReservationDecisionIsRepeatable(t *testing.T) {
	svc, store := newTestService(existingStay(10, 12))
	cand := model.CandidateBooking{RoomID: roomID, CheckIn: day(11), CheckOut: day(13)}
	for i := 0; i < 3; i++ {
		_, err := svc.CreateReservation(context.Background(), 9, cand)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	}
	assert.Len(t, store.rows, 1)
}

// Two concurrent identical candidates race for an empty room; the
// store's atomic check-and-insert must admit exactly one.
func TestCreateReservationConcurrentDuplicates(t *testing.T) {
	svc, store := newTestService()
	cand := model.CandidateBooking{RoomID: roomID, CheckIn: day(1), CheckOut: day(3)}

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateReservation(context.Background(), uint64(100+i), cand)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Len(t, store.rows, 1)
}
