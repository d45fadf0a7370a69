package events

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Gateway is the slice of the upstream client this service consumes.
type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	ListEvents(ctx context.Context, token string) ([]Event, error)
	GetEvent(ctx context.Context, token, eventID string) (*Event, error)
	UpdateAttendance(ctx context.Context, token, eventID string, status AttendanceStatus) error
	ListAttendees(ctx context.Context, token, eventID string) ([]Attendee, error)
}

// Service sits between the handlers and the upstream gateway. This is the
// boundary where transport and shape failures stop: list lookups degrade to
// empty results, detail lookups to not-found, and everything gets logged. The
// rendering layer never sees an upstream error.
type Service struct {
	gateway Gateway
	cache   Cache
	ttl     time.Duration
	logger  *zap.Logger
}

// tokenTTL is deliberately longer than the event cache TTL; upstream tokens
// outlive individual page renders.
const tokenTTL = 30 * time.Minute

func NewService(gateway Gateway, cache Cache, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		gateway: gateway,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.Named("events"),
	}
}

// List returns the normalized event collection, from cache when fresh. On any
// upstream failure it returns an empty slice.
func (s *Service) List(ctx context.Context) []Event {
	if s.cache != nil {
		if evs, err := s.cache.GetEvents(ctx); err == nil {
			return evs
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("events cache read failed", zap.Error(err))
		}
	}

	token := s.token(ctx)
	raw, err := s.gateway.ListEvents(ctx, token)
	if err != nil {
		s.logger.Error("failed to list events", zap.Error(err))
		return []Event{}
	}

	evs := make([]Event, 0, len(raw))
	for _, e := range raw {
		evs = append(evs, Normalize(e))
	}

	if s.cache != nil {
		if err := s.cache.SetEvents(ctx, evs, s.ttl); err != nil {
			s.logger.Warn("events cache write failed", zap.Error(err))
		}
	}
	return evs
}

// Get returns one normalized event, or nil when the id is unknown or the
// upstream is unreachable. It tries the cached collection before issuing a
// dedicated fetch.
func (s *Service) Get(ctx context.Context, eventID string) *Event {
	for _, e := range s.List(ctx) {
		if e.ID == eventID {
			ev := e
			return &ev
		}
	}

	raw, err := s.gateway.GetEvent(ctx, s.token(ctx), eventID)
	if err != nil {
		s.logger.Error("failed to get event", zap.String("event_id", eventID), zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	ev := Normalize(*raw)
	return &ev
}

// Similar returns up to limit other events, for the detail page rail.
func (s *Service) Similar(ctx context.Context, eventID string, limit int) []Event {
	var out []Event
	for _, e := range s.List(ctx) {
		if e.ID == eventID {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Attendees returns the going list for an event; empty on failure.
func (s *Service) Attendees(ctx context.Context, eventID string) []Attendee {
	users, err := s.gateway.ListAttendees(ctx, s.token(ctx), eventID)
	if err != nil {
		s.logger.Error("failed to list attendees", zap.String("event_id", eventID), zap.Error(err))
		return []Attendee{}
	}
	for i := range users {
		if users[i].Avatar == "" {
			users[i].Avatar = PlaceholderAvatar
		}
	}
	return users
}

// SetAttendance forwards an RSVP change upstream. This one does surface the
// error: the caller owns the user-facing affordance for a failed toggle.
func (s *Service) SetAttendance(ctx context.Context, eventID string, status AttendanceStatus) error {
	if err := s.gateway.UpdateAttendance(ctx, s.token(ctx), eventID, status); err != nil {
		s.logger.Error("failed to update attendance",
			zap.String("event_id", eventID),
			zap.String("status", string(status)),
			zap.Error(err))
		return err
	}
	return nil
}

// token returns a cached upstream token, authenticating when needed. An empty
// token means "unauthenticated fetch, proceed anyway"; the upstream read
// endpoints tolerate it.
func (s *Service) token(ctx context.Context) string {
	if s.cache != nil {
		if token, err := s.cache.GetToken(ctx); err == nil {
			return token
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("token cache read failed", zap.Error(err))
		}
	}

	token, err := s.gateway.Authenticate(ctx)
	if err != nil {
		s.logger.Error("upstream authentication failed", zap.Error(err))
		return ""
	}

	if s.cache != nil {
		if err := s.cache.SetToken(ctx, token, tokenTTL); err != nil {
			s.logger.Warn("token cache write failed", zap.Error(err))
		}
	}
	return token
}
