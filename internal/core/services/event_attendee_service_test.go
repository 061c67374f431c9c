package services

import (
	"context"
	"testing"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openEvent(id uint) *models.Event {
	return &models.Event{
		ID:        id,
		Name:      "Open Event",
		Status:    models.EventStatusOpen,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	}
}

func newTestAttendeeService(
	attendeeRepo *fakeEventAttendeeRepo,
	eventRepo *fakeEventRepo,
	crewRepo *fakeEventCrewRepo,
	userRepo *fakeUserRepo,
) *EventAttendeeService {
	security := newTestSecurityService(&fakeAdministratorRepo{}, crewRepo, eventRepo, &fakeUserCCInfoRepo{})
	return NewEventAttendeeService(attendeeRepo, eventRepo, userRepo, security)
}

func TestEventAttendeeService_Register(t *testing.T) {
	attendeeRepo := &fakeEventAttendeeRepo{}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	s := newTestAttendeeService(attendeeRepo, eventRepo, &fakeEventCrewRepo{}, &fakeUserRepo{})

	attendee, err := s.Register(context.Background(), defaultUserID, &RegisterAttendeeInput{
		EventID:          defaultEventID,
		ProvideTransport: true,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultUserID, attendee.UserID)
	assert.True(t, attendee.ProvideTransport)
}

func TestEventAttendeeService_Register_Duplicate(t *testing.T) {
	attendeeRepo := &fakeEventAttendeeRepo{attendees: []*models.EventAttendee{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID},
	}}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	s := newTestAttendeeService(attendeeRepo, eventRepo, &fakeEventCrewRepo{}, &fakeUserRepo{})

	_, err := s.Register(context.Background(), defaultUserID, &RegisterAttendeeInput{EventID: defaultEventID})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestEventAttendeeService_Register_Rejections(t *testing.T) {
	ended := openEvent(defaultEventID)
	ended.StartDate = time.Now().Add(-48 * time.Hour)
	ended.EndDate = time.Now().Add(-24 * time.Hour)

	cancelled := openEvent(defaultEventID)
	cancelled.Status = models.EventStatusCancelled

	tests := []struct {
		name    string
		event   *models.Event
		wantErr error
	}{
		{"EndedEvent", ended, domain.ErrEventEnded},
		{"CancelledEvent", cancelled, domain.ErrEventCancelled},
		{"MissingEvent", nil, domain.ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &fakeEventRepo{}
			if tt.event != nil {
				eventRepo.events = []*models.Event{tt.event}
			}
			s := newTestAttendeeService(&fakeEventAttendeeRepo{}, eventRepo, &fakeEventCrewRepo{}, &fakeUserRepo{})

			_, err := s.Register(context.Background(), defaultUserID, &RegisterAttendeeInput{EventID: defaultEventID})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEventAttendeeService_ListByEventID(t *testing.T) {
	attendeeRepo := &fakeEventAttendeeRepo{attendees: []*models.EventAttendee{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID},
		{ID: 2, EventID: otherEventID, UserID: defaultUserID},
	}}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	crewRepo := &fakeEventCrewRepo{crews: []*models.EventCrew{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID, Role: models.EventCrewRoleMember},
	}}
	userRepo := &fakeUserRepo{users: []*models.User{
		{ID: defaultUserID, FirstName: "Mei", LastName: "Ling", Email: "mei@example.com"},
	}}
	s := newTestAttendeeService(attendeeRepo, eventRepo, crewRepo, userRepo)

	attendees, total, err := s.ListByEventID(context.Background(), defaultUserID, defaultEventID, 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, attendees, 1)
	assert.Equal(t, "Mei", attendees[0].FirstName)
	assert.Equal(t, "mei@example.com", attendees[0].Email)
}

func TestEventAttendeeService_ListByEventID_Forbidden(t *testing.T) {
	attendeeRepo := &fakeEventAttendeeRepo{attendees: []*models.EventAttendee{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID},
	}}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	s := newTestAttendeeService(attendeeRepo, eventRepo, &fakeEventCrewRepo{}, &fakeUserRepo{})

	_, _, err := s.ListByEventID(context.Background(), defaultUserID, defaultEventID, 0, 20)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
