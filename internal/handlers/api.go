package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mrwowow/WaoCard-Landing/internal/events"
	"github.com/Mrwowow/WaoCard-Landing/internal/view"
)

// API serves the small JSON surface the rendered pages poll: the event
// collection and per-event countdown tuples.
type API struct {
	events *events.Service
	logger *zap.Logger
	clock  func() time.Time
}

func NewAPI(svc *events.Service, logger *zap.Logger) *API {
	return &API{
		events: svc,
		logger: logger.Named("api"),
		clock:  time.Now,
	}
}

// ListEvents returns the normalized collection, filtered by an optional q
// parameter the same way the listing page filters.
func (a *API) ListEvents(c *gin.Context) {
	evs := a.events.List(c.Request.Context())
	evs = events.FilterBySearch(evs, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"events": events.ToDisplayAll(evs)})
}

// EventCountdown returns the remaining time tuple for one event. The page
// script polls this once per second while the detail view is mounted.
func (a *API) EventCountdown(c *gin.Context) {
	id := c.Param("id")
	ev := a.events.Get(c.Request.Context(), id)
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	starts := events.ParseEventDate(ev.StartDate, ev.StartTime)
	c.JSON(http.StatusOK, gin.H{"countdown": view.Remaining(starts, a.clock())})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
