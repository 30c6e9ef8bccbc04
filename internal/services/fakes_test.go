package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"festa/internal/apperrors"
	"festa/internal/geo"
	"festa/internal/models"
)

// fakeBookingsRepo keeps bookings in memory and mirrors the repository's
// boundary-inclusive overlap rule, lock semantics and transaction shape.
type fakeBookingsRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*models.VenueBooking
	locks    map[string]struct{}

	createErr error
	txErr     error
}

func newFakeBookingsRepo() *fakeBookingsRepo {
	return &fakeBookingsRepo{
		bookings: make(map[uuid.UUID]*models.VenueBooking),
		locks:    make(map[string]struct{}),
	}
}

func (f *fakeBookingsRepo) FindOverlapping(ctx context.Context, venueId uuid.UUID, start, end time.Time) ([]*models.VenueBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.VenueBooking
	for _, b := range f.bookings {
		if b.VenueID != venueId || b.Status == models.BookingStatusCanceled {
			continue
		}
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingsRepo) CreateBooking(ctx context.Context, booking *models.VenueBooking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingsRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.VenueBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, apperrors.NotFound("booking", id.String())
	}
	return b, nil
}

func (f *fakeBookingsRepo) ListBookingsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*models.VenueBooking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []*models.VenueBooking
	for _, b := range f.bookings {
		if b.UserID == userId {
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.String() < all[j].ID.String() })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	endIdx := offset + limit
	if endIdx > len(all) {
		endIdx = len(all)
	}
	return all[offset:endIdx], total, nil
}

func (f *fakeBookingsRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return apperrors.NotFound("booking", id.String())
	}
	b.Status = status
	return nil
}

func (f *fakeBookingsRepo) AcquireLock(ctx context.Context, lockId string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, held := f.locks[lockId]; held {
		return apperrors.Conflict("another booking for this venue is in progress")
	}
	f.locks[lockId] = struct{}{}
	return nil
}

func (f *fakeBookingsRepo) ReleaseLock(ctx context.Context, lockId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locks, lockId)
	return nil
}

func (f *fakeBookingsRepo) ExecuteTransaction(ctx context.Context, fn models.TransactionFunc) error {
	if f.txErr != nil {
		return f.txErr
	}
	return fn(mongo.NewSessionContext(ctx, nil))
}

type fakeVenuesRepo struct {
	mu     sync.Mutex
	venues map[uuid.UUID]*models.Venue
}

func newFakeVenuesRepo(venues ...*models.Venue) *fakeVenuesRepo {
	f := &fakeVenuesRepo{venues: make(map[uuid.UUID]*models.Venue)}
	for _, v := range venues {
		f.venues[v.ID] = v
	}
	return f
}

func (f *fakeVenuesRepo) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.venues[venue.ID] = venue
	return venue, nil
}

func (f *fakeVenuesRepo) GetVenueByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[id]
	if !ok {
		return nil, apperrors.NotFound("venue", id.String())
	}
	return v, nil
}

func (f *fakeVenuesRepo) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int64, error) {
	all := f.sorted(func(*models.Venue) bool { return true })
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (f *fakeVenuesRepo) ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*models.Venue, int64, error) {
	all := f.sorted(func(v *models.Venue) bool { return v.HostID == hostId })
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (f *fakeVenuesRepo) UpdateVenue(ctx context.Context, venueId uuid.UUID, updates map[string]interface{}) (*models.Venue, error) {
	return f.GetVenueByID(ctx, venueId)
}

func (f *fakeVenuesRepo) DeleteVenue(ctx context.Context, hostId, venueId uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venues[venueId]
	if !ok || v.HostID != hostId {
		return apperrors.NotFound("venue", venueId.String())
	}
	delete(f.venues, venueId)
	return nil
}

func (f *fakeVenuesRepo) QueryVenues(ctx context.Context, query models.VenueQuery, skip, limit int64) ([]*models.Venue, error) {
	all := f.sorted(func(v *models.Venue) bool { return matchesQuery(v, query) })
	if skip >= int64(len(all)) {
		return nil, nil
	}
	endIdx := skip + limit
	if endIdx > int64(len(all)) {
		endIdx = int64(len(all))
	}
	return all[skip:endIdx], nil
}

func (f *fakeVenuesRepo) CountVenues(ctx context.Context, query models.VenueQuery) (int64, error) {
	return int64(len(f.sorted(func(v *models.Venue) bool { return matchesQuery(v, query) }))), nil
}

func (f *fakeVenuesRepo) sorted(keep func(*models.Venue) bool) []*models.Venue {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Venue
	for _, v := range f.venues {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

func matchesQuery(v *models.Venue, q models.VenueQuery) bool {
	if v.Status != models.VenueStatusActive {
		return false
	}
	if q.MaxPricePerDay > 0 && v.PricePerDay > q.MaxPricePerDay {
		return false
	}
	if q.MinCapacity > 0 && v.Capacity < q.MinCapacity {
		return false
	}
	if q.Box != nil {
		if v.Coordinates == nil {
			return false
		}
		if v.Coordinates.Latitude < q.Box.MinLat || v.Coordinates.Latitude > q.Box.MaxLat {
			return false
		}
		if v.Coordinates.Longitude < q.Box.MinLng || v.Coordinates.Longitude > q.Box.MaxLng {
			return false
		}
	}
	return true
}

func pageOf(all []*models.Venue, offset, limit int) []*models.Venue {
	if offset >= len(all) {
		return nil
	}
	endIdx := offset + limit
	if endIdx > len(all) {
		endIdx = len(all)
	}
	return all[offset:endIdx]
}

type fakeEventsRepo struct {
	mu        sync.Mutex
	events    map[uuid.UUID]*models.Event
	createErr error
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{events: make(map[uuid.UUID]*models.Event)}
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, event *models.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventsRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.NotFound("event", id.String())
	}
	return e, nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context, publicOnly bool, offset, limit int) ([]*models.Event, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Event
	for _, e := range f.events {
		if publicOnly && !e.Public {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

type fakePaymentsRepo struct {
	mu        sync.Mutex
	payments  map[uuid.UUID]*models.Payment
	createErr error
}

func newFakePaymentsRepo() *fakePaymentsRepo {
	return &fakePaymentsRepo{payments: make(map[uuid.UUID]*models.Payment)}
}

func (f *fakePaymentsRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentsRepo) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return nil, apperrors.NotFound("payment", id.String())
	}
	return p, nil
}

func (f *fakePaymentsRepo) GetPaymentByBooking(ctx context.Context, bookingId uuid.UUID) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.payments {
		if p.BookingID == bookingId {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("payment", bookingId.String())
}

// fakeGateway records charges and voids so tests can assert that a failed
// transaction rolls the charge back.
type fakeGateway struct {
	mu        sync.Mutex
	charges   []float64
	voided    []string
	chargeErr error
}

func (g *fakeGateway) Charge(ctx context.Context, amount float64, method, reference string) (string, error) {
	if g.chargeErr != nil {
		return "", g.chargeErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges = append(g.charges, amount)
	return "txn_test", nil
}

func (g *fakeGateway) Void(ctx context.Context, txnId string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.voided = append(g.voided, txnId)
	return nil
}

// fakeGeocoder resolves addresses from a fixed table.
type fakeGeocoder struct {
	coords map[string]geo.Coordinates
	err    error
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (geo.Coordinates, error) {
	if g.err != nil {
		return geo.Coordinates{}, g.err
	}
	c, ok := g.coords[address]
	if !ok {
		return geo.Coordinates{}, apperrors.ExternalService("no geocoding result", nil)
	}
	return c, nil
}
