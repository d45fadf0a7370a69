package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/Mrwowow/WaoCard-Landing/internal/auth"
	"github.com/Mrwowow/WaoCard-Landing/internal/content"
	"github.com/Mrwowow/WaoCard-Landing/internal/events"
	"github.com/Mrwowow/WaoCard-Landing/internal/view"
)

// Pages renders the server-side HTML routes: the landing page, the events
// directory and the event detail view.
type Pages struct {
	events       *events.Service
	auth         auth.Authenticator
	canonicalURL string
	logger       *zap.Logger
	clock        func() time.Time
}

func NewPages(svc *events.Service, authn auth.Authenticator, canonicalURL string, logger *zap.Logger) *Pages {
	return &Pages{
		events:       svc,
		auth:         authn,
		canonicalURL: strings.TrimRight(canonicalURL, "/"),
		logger:       logger.Named("pages"),
		clock:        time.Now,
	}
}

func (p *Pages) viewer(c *gin.Context) events.Viewer {
	if s := p.auth.Viewer(c.Request); s != nil {
		return events.Viewer{Authenticated: true, UserID: s.UserID}
	}
	return events.Viewer{}
}

// Home composes the static landing sections. The card-type and business-tool
// tabs and the testimonial slide are selectable through query parameters so
// the page stays shareable without client state.
func (p *Pages) Home(c *gin.Context) {
	cardTabs := view.NewTabGroup(content.CardTypeIDs()...)
	cardTabs.Select(c.Query("card"))

	toolTabs := view.NewTabGroup(content.BusinessToolIDs()...)
	toolTabs.Select(c.Query("tool"))

	carousel := view.NewCarousel(len(content.Testimonials))
	if i, err := strconv.Atoi(c.Query("slide")); err == nil {
		carousel.Select(i)
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":           "WaoCard | Wao Your World",
		"Authenticated":   p.viewer(c).Authenticated,
		"Features":        content.Features,
		"Steps":           content.Steps,
		"CardTypes":       content.CardTypes,
		"ActiveCard":      cardTabs.Active(),
		"Benefits":        content.Benefits,
		"BusinessTools":   content.BusinessTools,
		"ActiveTool":      toolTabs.Active(),
		"PrimaryMarkets":  content.PrimaryMarkets,
		"UpcomingMarkets": content.UpcomingMarkets,
		"Testimonials":    content.Testimonials,
		"ActiveSlide":     carousel.Index(),
	})
}

// EventsIndex renders the directory listing. Search query, category filter
// and section tab are all URL query parameters.
func (p *Pages) EventsIndex(c *gin.Context) {
	viewer := p.viewer(c)

	sectionTabs := make([]string, len(events.Sections))
	for i, s := range events.Sections {
		sectionTabs[i] = s.ID
	}
	tabs := view.NewTabGroup(sectionTabs...)
	tabs.Select(c.Query("section"))

	categories := view.NewTabGroup(content.CategoryIDs()...)
	categories.Select(c.Query("category"))

	query := c.Query("q")

	all := p.events.List(c.Request.Context())
	section, _ := events.SectionByID(tabs.Active())
	subset := events.SectionFor(all, section.ID, viewer, p.clock())
	subset = events.FilterBySearch(subset, query)

	c.HTML(http.StatusOK, "events.html", gin.H{
		"Title":          "Events | WaoCard",
		"Authenticated":  viewer.Authenticated,
		"Sections":       events.Sections,
		"ActiveSection":  section,
		"Categories":     content.Categories,
		"ActiveCategory": categories.Active(),
		"Query":          query,
		"Events":         events.ToDisplayAll(subset),
	})
}

// EventDetail renders one event, or the defined not-found view with a
// recovery link back to the listing.
func (p *Pages) EventDetail(c *gin.Context) {
	id := c.Param("id")
	ev := p.events.Get(c.Request.Context(), id)
	if ev == nil {
		c.HTML(http.StatusNotFound, "event_not_found.html", gin.H{
			"Title": "Event not found | WaoCard",
		})
		return
	}

	d := events.ToDisplay(*ev)
	viewer := p.viewer(c)

	status := events.AttendanceNone
	if ev.IsGoing {
		status = events.AttendanceGoing
	} else if ev.IsInterested {
		status = events.AttendanceInterested
	}

	lat, lng := organizerCoords(ev.Organizer)

	c.HTML(http.StatusOK, "event.html", gin.H{
		"Title":         d.Name + " | WaoCard Events",
		"Authenticated": viewer.Authenticated,
		"Event":         d,
		"Status":        status,
		"Countdown":     view.Remaining(d.StartsAt, p.clock()),
		"Attendees":     p.events.Attendees(c.Request.Context(), id),
		"Similar":       events.ToDisplayAll(p.events.Similar(c.Request.Context(), id, 4)),
		"Lat":           lat,
		"Lng":           lng,
		"CanonicalURL":  p.eventURL(id),
		"SignInPrompt":  c.Query("signin") == "1",
	})
}

// Attendance handles the RSVP toggle POST. Anonymous viewers are bounced
// back to the detail page with an inline sign-in prompt instead of the old
// blocking dialog.
func (p *Pages) Attendance(c *gin.Context) {
	id := c.Param("id")
	back := "/events/" + id

	if p.auth.Viewer(c.Request) == nil {
		c.Redirect(http.StatusSeeOther, back+"?signin=1")
		return
	}

	status := events.AttendanceStatus(c.PostForm("status"))
	if !status.Valid() {
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	ev := p.events.Get(c.Request.Context(), id)
	if ev == nil {
		c.HTML(http.StatusNotFound, "event_not_found.html", gin.H{
			"Title": "Event not found | WaoCard",
		})
		return
	}

	// A second click on the already-active choice clears it.
	if (status == events.AttendanceGoing && ev.IsGoing) ||
		(status == events.AttendanceInterested && ev.IsInterested) {
		status = events.AttendanceNone
	}

	if err := p.events.SetAttendance(c.Request.Context(), id, status); err != nil {
		c.Redirect(http.StatusSeeOther, back+"?rsvp=failed")
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}

// EventQR serves a PNG QR code encoding the canonical event URL.
func (p *Pages) EventQR(c *gin.Context) {
	id := c.Param("id")
	if p.events.Get(c.Request.Context(), id) == nil {
		c.Status(http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(p.eventURL(id), qrcode.Medium, 256)
	if err != nil {
		p.logger.Error("failed to encode event QR", zap.String("event_id", id), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Login establishes the demo session and returns to where the user was.
func (p *Pages) Login(c *gin.Context) {
	if _, err := p.auth.Login(c.Writer); err != nil {
		p.logger.Error("login failed", zap.Error(err))
		c.Redirect(http.StatusSeeOther, redirectTarget(c))
		return
	}
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

// Logout clears the session.
func (p *Pages) Logout(c *gin.Context) {
	p.auth.Logout(c.Writer)
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

func (p *Pages) eventURL(id string) string {
	return p.canonicalURL + "/events/" + id
}

func organizerCoords(o events.Organizer) (float64, float64) {
	lat, err := strconv.ParseFloat(o.Lat, 64)
	if err != nil {
		lat = 0
	}
	lng, err := strconv.ParseFloat(o.Lng, 64)
	if err != nil {
		lng = 0
	}
	return lat, lng
}

// redirectTarget picks a safe same-site path to return to after an auth
// action. Absolute URLs from the form are rejected.
func redirectTarget(c *gin.Context) string {
	to := c.PostForm("redirect")
	if to == "" || !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") {
		return "/"
	}
	return to
}
