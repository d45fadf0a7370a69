package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeGateway struct {
	token     string
	tokenErr  error
	events    []Event
	eventsErr error
	authCalls int
	listCalls int
}

func (g *fakeGateway) Authenticate(ctx context.Context) (string, error) {
	g.authCalls++
	return g.token, g.tokenErr
}

func (g *fakeGateway) ListEvents(ctx context.Context, token string) ([]Event, error) {
	g.listCalls++
	return g.events, g.eventsErr
}

func (g *fakeGateway) GetEvent(ctx context.Context, token, eventID string) (*Event, error) {
	for _, e := range g.events {
		if e.ID == eventID {
			ev := e
			return &ev, nil
		}
	}
	return nil, nil
}

func (g *fakeGateway) UpdateAttendance(ctx context.Context, token, eventID string, status AttendanceStatus) error {
	return nil
}

func (g *fakeGateway) ListAttendees(ctx context.Context, token, eventID string) ([]Attendee, error) {
	return nil, nil
}

type memoryCache struct {
	token  string
	events []Event
}

func (c *memoryCache) GetToken(ctx context.Context) (string, error) {
	if c.token == "" {
		return "", ErrCacheMiss
	}
	return c.token, nil
}

func (c *memoryCache) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	c.token = token
	return nil
}

func (c *memoryCache) GetEvents(ctx context.Context) ([]Event, error) {
	if c.events == nil {
		return nil, ErrCacheMiss
	}
	return c.events, nil
}

func (c *memoryCache) SetEvents(ctx context.Context, evs []Event, ttl time.Duration) error {
	c.events = evs
	return nil
}

func TestServiceListNormalizes(t *testing.T) {
	gw := &fakeGateway{token: "tok", events: []Event{{ID: "1"}}}
	svc := NewService(gw, nil, time.Minute, zap.NewNop())

	got := svc.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("got %d events", len(got))
	}
	if got[0].Name != DefaultName {
		t.Errorf("List should normalize records, Name = %q", got[0].Name)
	}
}

func TestServiceListUpstreamFailureYieldsEmpty(t *testing.T) {
	gw := &fakeGateway{token: "tok", eventsErr: errors.New("connection refused")}
	svc := NewService(gw, nil, time.Minute, zap.NewNop())

	got := svc.List(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestServiceListAuthFailureStillFetches(t *testing.T) {
	// An empty token means an unauthenticated fetch, not a dead end.
	gw := &fakeGateway{tokenErr: errors.New("bad credentials"), events: []Event{{ID: "1"}}}
	svc := NewService(gw, nil, time.Minute, zap.NewNop())

	if got := svc.List(context.Background()); len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
}

func TestServiceListUsesCache(t *testing.T) {
	gw := &fakeGateway{token: "tok", events: []Event{{ID: "1"}}}
	cache := &memoryCache{}
	svc := NewService(gw, cache, time.Minute, zap.NewNop())

	svc.List(context.Background())
	svc.List(context.Background())

	if gw.listCalls != 1 {
		t.Fatalf("upstream hit %d times, want 1 (second read from cache)", gw.listCalls)
	}
	if gw.authCalls != 1 {
		t.Fatalf("authenticated %d times, want 1 (token cached)", gw.authCalls)
	}
}

func TestServiceGet(t *testing.T) {
	gw := &fakeGateway{token: "tok", events: []Event{{ID: "1", Name: "Launch"}}}
	svc := NewService(gw, nil, time.Minute, zap.NewNop())

	if ev := svc.Get(context.Background(), "1"); ev == nil || ev.Name != "Launch" {
		t.Fatalf("Get(1) = %+v", ev)
	}
	if ev := svc.Get(context.Background(), "missing"); ev != nil {
		t.Fatalf("Get(missing) = %+v, want nil", ev)
	}
}

func TestServiceSimilarExcludesSelf(t *testing.T) {
	gw := &fakeGateway{token: "tok", events: []Event{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	svc := NewService(gw, nil, time.Minute, zap.NewNop())

	got := svc.Similar(context.Background(), "2", 4)
	if len(got) != 2 {
		t.Fatalf("got %d similar events", len(got))
	}
	for _, e := range got {
		if e.ID == "2" {
			t.Fatalf("similar events include the event itself")
		}
	}
}
