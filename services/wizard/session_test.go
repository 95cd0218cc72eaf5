package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"travelbook/database/repository/booking"
	"travelbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock collaborators

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query models.SearchQuery) ([]models.Offering, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Offering), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, reason string) error {
	args := m.Called(ctx, bookingID, status, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) MarkEmailSent(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EnqueueConfirmation(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// memSessionStore mimics the Redis store: every Get returns an independent
// copy, so mutations are only visible after Save.
type memSessionStore struct {
	sessions map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]string)}
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.sessions[session.SessionID] = string(data)
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type wizardFixture struct {
	svc      *DefaultWizardService
	search   *MockSearchService
	bookings *MockBookingRepository
	notifier *MockNotifier
	store    *memSessionStore
}

func newWizardFixture() *wizardFixture {
	f := &wizardFixture{
		search:   new(MockSearchService),
		bookings: new(MockBookingRepository),
		notifier: new(MockNotifier),
		store:    newMemSessionStore(),
	}
	f.svc = &DefaultWizardService{
		SearchSvc: f.search,
		Bookings:  f.bookings,
		Notifier:  f.notifier,
		Sessions:  f.store,
		Logger:    zap.NewNop(),
	}
	return f
}

var testUser = models.UserContext{UserID: "user-1", Email: "user@example.com"}

func hotelQuery() models.SearchQuery {
	return models.SearchQuery{
		Kind:        models.KindHotel,
		Destination: "Goa",
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-04",
		Passengers:  2,
		Rooms:       1,
	}
}

func hotelOffering() models.Offering {
	return models.Offering{
		ID:          "hotel-goa-1",
		Kind:        models.KindHotel,
		Operator:    "Sea Breeze Resort",
		Destination: "Goa",
		UnitPrice:   1299,
		Currency:    "INR",
		Capacity:    12,
		Classes:     []string{RoomStandard, RoomDeluxe, RoomSuite},
	}
}

func flightOffering() models.Offering {
	return models.Offering{
		ID:          "flight-del-goa",
		Kind:        models.KindFlight,
		Operator:    "IndiGo",
		Origin:      "Delhi",
		Destination: "Goa",
		DepartAt:    time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		UnitPrice:   15299,
		Currency:    "INR",
		Capacity:    180,
		Classes:     []string{ClassEconomy, ClassBusiness},
	}
}

func guestDetails() DetailsInput {
	return DetailsInput{
		Travelers: []models.Traveler{
			{FirstName: "Asha", LastName: "Nair", Email: "asha@example.com", Phone: "9876543210", Age: 34},
			{FirstName: "Ravi", LastName: "Nair", Age: 36},
		},
		RoomType: RoomStandard,
	}
}

// advanceToReview walks a fresh session through search, select and details.
func advanceToReview(t *testing.T, f *wizardFixture, query models.SearchQuery, offering models.Offering, details DetailsInput) string {
	t.Helper()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{offering}, nil).Once()
	_, err = f.svc.Search(ctx, session.SessionID, query)
	require.NoError(t, err)

	_, err = f.svc.Select(ctx, session.SessionID, offering.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitDetails(ctx, session.SessionID, details)
	require.NoError(t, err)

	return session.SessionID
}

func TestStartSessionRequiresUser(t *testing.T) {
	f := newWizardFixture()
	_, err := f.svc.StartSession(context.Background(), models.UserContext{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSearchInvalidQueryDoesNotCallProvider(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	query := hotelQuery()
	query.Destination = ""
	_, err = f.svc.Search(ctx, session.SessionID, query)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	f.search.AssertNotCalled(t, "Search")

	stored, err := f.store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSearch, stored.Step)
}

func TestSearchRejectionKeepsPreviousResults(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{hotelOffering()}, nil).Once()
	_, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.NoError(t, err)

	// Re-search with a missing destination: rejected before the provider.
	bad := hotelQuery()
	bad.Destination = ""
	_, err = f.svc.Search(ctx, session.SessionID, bad)
	require.Error(t, err)

	stored, err := f.store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepResults, stored.Step)
	require.Len(t, stored.Results, 1)
	assert.Equal(t, "hotel-goa-1", stored.Results[0].ID)
	f.search.AssertNumberOfCalls(t, "Search", 1)
}

func TestSearchReplacesResults(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	first := hotelOffering()
	second := hotelOffering()
	second.ID = "hotel-goa-2"
	second.Operator = "Palm Grove"

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{first, second}, nil).Once()
	updated, err := f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.NoError(t, err)
	require.Len(t, updated.Results, 2)

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{second}, nil).Once()
	updated, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.NoError(t, err)

	// Replaced, never appended.
	require.Len(t, updated.Results, 1)
	assert.Equal(t, "hotel-goa-2", updated.Results[0].ID)
}

func TestSearchProviderFailureKeepsSession(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	f.search.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("listing provider down")).Once()
	_, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.Error(t, err)

	stored, err := f.store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSearch, stored.Step)
	assert.Empty(t, stored.Results)
}

func TestSelectPresizesTravelerForms(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{hotelOffering()}, nil).Once()
	_, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.NoError(t, err)

	updated, err := f.svc.Select(ctx, session.SessionID, "hotel-goa-1")
	require.NoError(t, err)

	assert.Equal(t, models.StepDetails, updated.Step)
	require.NotNil(t, updated.Draft)
	assert.Equal(t, "hotel-goa-1", updated.Draft.Offering.ID)
	assert.Equal(t, 2, updated.Draft.Passengers)
	assert.Len(t, updated.Draft.Travelers, 2)
}

func TestSelectUnknownOfferingRejected(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{hotelOffering()}, nil).Once()
	_, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
	require.NoError(t, err)

	_, err = f.svc.Select(ctx, session.SessionID, "no-such-offering")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	stored, err := f.store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepResults, stored.Step)
	assert.Nil(t, stored.Draft)
}

func TestSubmitDetailsGuards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *DetailsInput)
	}{
		{"missing first name", func(d *DetailsInput) { d.Travelers[0].FirstName = "" }},
		{"missing last name", func(d *DetailsInput) { d.Travelers[1].LastName = "" }},
		{"missing primary email", func(d *DetailsInput) { d.Travelers[0].Email = "" }},
		{"malformed primary email", func(d *DetailsInput) { d.Travelers[0].Email = "not-an-email" }},
		{"missing primary phone", func(d *DetailsInput) { d.Travelers[0].Phone = "" }},
		{"traveler count mismatch", func(d *DetailsInput) { d.Travelers = d.Travelers[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWizardFixture()
			ctx := context.Background()

			session, err := f.svc.StartSession(ctx, testUser)
			require.NoError(t, err)

			f.search.On("Search", mock.Anything, mock.Anything).Return([]models.Offering{hotelOffering()}, nil).Once()
			_, err = f.svc.Search(ctx, session.SessionID, hotelQuery())
			require.NoError(t, err)
			_, err = f.svc.Select(ctx, session.SessionID, "hotel-goa-1")
			require.NoError(t, err)

			details := guestDetails()
			tt.mutate(&details)

			_, err = f.svc.SubmitDetails(ctx, session.SessionID, details)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			stored, err := f.store.Get(ctx, session.SessionID)
			require.NoError(t, err)
			assert.Equal(t, models.StepDetails, stored.Step)
		})
	}
}

func TestSubmitDetailsComputesPrice(t *testing.T) {
	f := newWizardFixture()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	stored, err := f.store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, stored.Step)
	// 1299/night × 3 nights × 1 standard room.
	assert.Equal(t, 3897.0, stored.Draft.TotalPrice)
	assert.NotEmpty(t, stored.Draft.IdempotencyKey)
}

func TestBackAndResubmitPriceStable(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	first, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)

	_, err = f.svc.Back(ctx, sessionID)
	require.NoError(t, err)

	second, err := f.svc.SubmitDetails(ctx, sessionID, guestDetails())
	require.NoError(t, err)

	assert.Equal(t, first.Draft.TotalPrice, second.Draft.TotalPrice)
	// Each submission attempt gets its own idempotency key.
	assert.NotEqual(t, first.Draft.IdempotencyKey, second.Draft.IdempotencyKey)
}

func TestConfirmRequiresTerms(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	_, err := f.svc.Confirm(ctx, sessionID, false)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	stored, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, stored.Step)
	f.bookings.AssertNotCalled(t, "Create")
}

func TestConfirmHotelBooking(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	var created *models.Booking
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Booking) }).
		Return(nil).Once()
	f.notifier.On("EnqueueConfirmation", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(nil).Once()

	resp, err := f.svc.Confirm(ctx, sessionID, true)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, models.KindHotel, created.Kind)
	assert.Equal(t, 3897.0, created.TotalPrice)
	assert.Equal(t, "INR", created.Currency)
	assert.Equal(t, models.BookingConfirmed, created.Status)
	assert.Equal(t, "asha@example.com", created.ContactEmail)
	require.NotNil(t, created.Hotel)
	assert.Equal(t, 3, created.Hotel.Nights)
	assert.Equal(t, RoomStandard, created.Hotel.RoomType)
	assert.Nil(t, created.Flight)

	assert.Equal(t, created.ID, resp.BookingID)
	assert.Equal(t, 3897.0, resp.TotalPrice)

	stored, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, stored.Step)
	assert.Equal(t, created.ID, stored.BookingID)
	assert.True(t, stored.Draft.TermsAccepted)

	// Exactly one notification for exactly one booking.
	f.notifier.AssertNumberOfCalls(t, "EnqueueConfirmation", 1)
	f.bookings.AssertNumberOfCalls(t, "Create", 1)
}

func TestConfirmBusinessFlightBooking(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	query := models.SearchQuery{
		Kind:        models.KindFlight,
		Origin:      "Delhi",
		Destination: "Goa",
		Date:        "2024-06-01",
		Passengers:  2,
	}
	details := DetailsInput{
		Travelers: []models.Traveler{
			{FirstName: "Asha", LastName: "Nair", Email: "asha@example.com", Phone: "9876543210", Age: 34},
			{FirstName: "Ravi", LastName: "Nair", Age: 36},
		},
		Class: ClassBusiness,
	}
	sessionID := advanceToReview(t, f, query, flightOffering(), details)

	var created *models.Booking
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Booking) }).
		Return(nil).Once()
	f.notifier.On("EnqueueConfirmation", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(nil).Once()

	resp, err := f.svc.Confirm(ctx, sessionID, true)
	require.NoError(t, err)

	// 15299 × 1.5 × 2.
	assert.Equal(t, 45897.0, resp.TotalPrice)
	require.NotNil(t, created.Flight)
	assert.Equal(t, ClassBusiness, created.Flight.CabinClass)
	assert.Equal(t, 2, created.Flight.Passengers)
}

func TestConfirmSucceedsWhenNotificationEnqueueFails(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("EnqueueConfirmation", mock.Anything, mock.Anything).
		Return(errors.New("queue unavailable")).Once()

	// Booking success is independent of mail delivery.
	resp, err := f.svc.Confirm(ctx, sessionID, true)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, models.BookingConfirmed, resp.Status)

	stored, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, stored.Step)
	assert.Equal(t, resp.BookingID, stored.BookingID)
}

func TestConfirmPersistenceFailureKeepsReview(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	f.bookings.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable")).Once()

	_, err := f.svc.Confirm(ctx, sessionID, true)
	require.Error(t, err)

	stored, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, stored.Step)
	require.NotNil(t, stored.Draft)
	assert.Equal(t, 3897.0, stored.Draft.TotalPrice)
	f.notifier.AssertNotCalled(t, "EnqueueConfirmation")
}

func TestConfirmRetryReturnsExistingBooking(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	stored, err := f.store.Get(ctx, sessionID)
	require.NoError(t, err)
	existing := &models.Booking{
		ID:             "booking-original",
		UserID:         testUser.UserID,
		Kind:           models.KindHotel,
		TotalPrice:     3897,
		Currency:       "INR",
		Status:         models.BookingConfirmed,
		IdempotencyKey: stored.Draft.IdempotencyKey,
	}

	f.bookings.On("Create", mock.Anything, mock.Anything).
		Return(bookingRepo.ErrDuplicateKey).Once()
	f.bookings.On("GetByIdempotencyKey", mock.Anything, stored.Draft.IdempotencyKey).
		Return(existing, nil).Once()

	resp, err := f.svc.Confirm(ctx, sessionID, true)
	require.NoError(t, err)

	assert.Equal(t, "booking-original", resp.BookingID)
	// The original attempt already queued its notification.
	f.notifier.AssertNotCalled(t, "EnqueueConfirmation")
}

func TestBackTransitions(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	session, err := f.svc.Back(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, session.Step)
	assert.NotNil(t, session.Draft)

	session, err = f.svc.Back(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepResults, session.Step)
	assert.Nil(t, session.Draft)

	// No backward action from results' predecessor states.
	_, err = f.svc.Reset(ctx, sessionID)
	require.Error(t, err)
	assert.True(t, IsTransitionError(err))
}

func TestBackRejectedAtSearch(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	_, err = f.svc.Back(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, IsTransitionError(err))
}

func TestResetAfterSuccess(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sessionID := advanceToReview(t, f, hotelQuery(), hotelOffering(), guestDetails())

	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("EnqueueConfirmation", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := f.svc.Confirm(ctx, sessionID, true)
	require.NoError(t, err)

	session, err := f.svc.Reset(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, models.StepSearch, session.Step)
	assert.Nil(t, session.Draft)
	assert.Empty(t, session.Results)
	assert.Empty(t, session.BookingID)
}

func TestCancelSessionDiscardsState(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelSession(ctx, session.SessionID))

	_, err = f.store.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizardRejectsUnknownKind(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, testUser)
	require.NoError(t, err)

	_, err = f.svc.Search(ctx, session.SessionID, models.SearchQuery{Kind: "spaceship", Destination: "Moon"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	f.search.AssertNotCalled(t, "Search")
}
