package events

import (
	"strconv"
	"strings"
	"time"
)

// Fallbacks applied by Normalize. Every field the templates require has a
// defined default so a partially populated upstream record can never produce
// an empty card.
const (
	DefaultName        = "Untitled Event"
	DefaultDescription = "Join us for this exciting event!"
	DefaultStartDate   = "05/01/25"
	DefaultStartTime   = "19:00:00"
	DefaultEndDate     = "05/01/25"
	DefaultEndTime     = "21:00:00"
	DefaultLocation    = "Lagos, Nigeria"
	DefaultCount       = "0"
	PlaceholderCover   = "/static/img/event-placeholder.png"
	PlaceholderAvatar  = "/static/img/avatar-placeholder.png"
)

// Normalize fills every missing field of a raw upstream record with its
// defined default. It is idempotent: normalizing an already normalized record
// yields the same record.
func Normalize(e Event) Event {
	if e.Name == "" {
		e.Name = DefaultName
	}
	if e.Description == "" {
		e.Description = DefaultDescription
	}
	if e.StartDate == "" {
		e.StartDate = DefaultStartDate
	}
	if e.StartTime == "" {
		e.StartTime = DefaultStartTime
	}
	if e.EndDate == "" {
		e.EndDate = e.StartDate
	}
	if e.EndTime == "" {
		e.EndTime = DefaultEndTime
	}
	if e.Location == "" {
		e.Location = DefaultLocation
	}
	if e.GoingCount == "" {
		e.GoingCount = DefaultCount
	}
	if e.InterestedCount == "" {
		e.InterestedCount = DefaultCount
	}
	if e.URL == "" {
		e.URL = "#"
	}
	e.Cover = ImageURL(e.Cover)
	if e.Organizer.Avatar == "" {
		e.Organizer.Avatar = PlaceholderAvatar
	}
	return e
}

// ImageURL resolves an upstream image reference. Absolute http(s) URLs pass
// through untouched; everything else falls back to the local placeholder.
func ImageURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if raw == "" {
		return PlaceholderCover
	}
	return raw
}

// ParseEventDate interprets an upstream MM/DD/YY date plus an HH:MM:SS clock
// string as a single local-time instant. Two-digit years are always read as
// 2000+YY. Malformed input yields the zero time.Time sentinel; callers check
// with IsZero rather than handling an error.
func ParseEventDate(dateStr, timeStr string) time.Time {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return time.Time{}
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}
	}
	yy, err := strconv.Atoi(parts[2])
	if err != nil || yy < 0 || yy > 99 {
		return time.Time{}
	}
	year := 2000 + yy

	hour, minute, second, ok := parseClock(timeStr)
	if !ok {
		return time.Time{}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject that too.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}
	}
	return t
}

func parseClock(timeStr string) (hour, minute, second int, ok bool) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	if vals[0] > 23 || vals[1] > 59 || vals[2] > 59 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}

// FilterBySearch returns the events whose name or description contains the
// query, case-insensitively. An empty query returns the input unchanged.
func FilterBySearch(evs []Event, query string) []Event {
	if query == "" {
		return evs
	}
	q := strings.ToLower(query)
	matched := make([]Event, 0, len(evs))
	for _, e := range evs {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Viewer identifies the person browsing the directory. Authenticated sections
// are keyed off the upstream user id carried in the session.
type Viewer struct {
	Authenticated bool
	UserID        string
}

// Section is a named, possibly authentication-gated subset of the directory.
type Section struct {
	ID           string
	Name         string
	Title        string
	EmptyMessage string
	RequiresAuth bool
}

// Sections lists the directory tabs in display order. The first entry is the
// initial tab.
var Sections = []Section{
	{ID: "explore", Name: "Explore", Title: "Discover Events",
		EmptyMessage: "No events found. Try a different search term or filter."},
	{ID: "my-events", Name: "My Events", Title: "Events You're Hosting",
		EmptyMessage: "You haven't created any events yet.", RequiresAuth: true},
	{ID: "going", Name: "Going", Title: "Events You're Attending",
		EmptyMessage: "You haven't confirmed attendance for any events yet.", RequiresAuth: true},
	{ID: "interested", Name: "Interested", Title: "Events You're Interested In",
		EmptyMessage: "You haven't marked any events as interested yet.", RequiresAuth: true},
	{ID: "invited", Name: "Invited", Title: "Event Invitations",
		EmptyMessage: "You don't have any event invitations.", RequiresAuth: true},
	{ID: "past", Name: "Past Events", Title: "Past Events",
		EmptyMessage: "You haven't attended any past events yet.", RequiresAuth: true},
}

// SectionByID looks up a section tab; ok is false for unknown ids.
func SectionByID(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionFor derives the subset of evs belonging to the named section for the
// given viewer. Membership comes from the records themselves (RSVP flags,
// organizer id, end time) rather than from any server-side personalization
// store. Auth-gated sections are empty for anonymous viewers; invitations
// have no upstream data source and are always empty.
func SectionFor(evs []Event, sectionID string, v Viewer, now time.Time) []Event {
	sec, ok := SectionByID(sectionID)
	if !ok {
		return nil
	}
	if sec.RequiresAuth && !v.Authenticated {
		return nil
	}

	switch sectionID {
	case "explore":
		return evs
	case "my-events":
		return filter(evs, func(e Event) bool {
			return v.UserID != "" && e.Organizer.UserID == v.UserID
		})
	case "going":
		return filter(evs, func(e Event) bool { return e.IsGoing })
	case "interested":
		return filter(evs, func(e Event) bool { return e.IsInterested })
	case "invited":
		return nil
	case "past":
		return filter(evs, func(e Event) bool {
			end := ParseEventDate(e.EndDate, e.EndTime)
			return !end.IsZero() && end.Before(now)
		})
	}
	return nil
}

func filter(evs []Event, keep func(Event) bool) []Event {
	var out []Event
	for _, e := range evs {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Display is a render-ready projection of a normalized Event. Templates only
// ever see Display values.
type Display struct {
	Event
	StartsAt        time.Time
	EndsAt          time.Time
	ShortDate       string
	LongDate        string
	TimeRange       string
	Summary         string
	GoingTotal      int
	InterestedTotal int
}

// summaryLen is how much of the description event cards show.
const summaryLen = 80

// ToDisplay parses the textual date/time fields of a normalized event and
// formats the derived strings the templates need. Records with unparseable
// dates keep the zero StartsAt/EndsAt and render without a date badge.
func ToDisplay(e Event) Display {
	d := Display{Event: e}
	d.StartsAt = ParseEventDate(e.StartDate, e.StartTime)
	d.EndsAt = ParseEventDate(e.EndDate, e.EndTime)
	if !d.StartsAt.IsZero() {
		d.ShortDate = d.StartsAt.Format("Jan 2")
		d.LongDate = d.StartsAt.Format("Monday, January 2, 2006")
		d.TimeRange = d.StartsAt.Format("3:04 PM")
		if !d.EndsAt.IsZero() {
			d.TimeRange += " - " + d.EndsAt.Format("3:04 PM")
		}
	}
	d.Summary = Truncate(e.Description, summaryLen)
	d.GoingTotal = parseCount(e.GoingCount)
	d.InterestedTotal = parseCount(e.InterestedCount)
	return d
}

// ToDisplayAll maps ToDisplay over a slice.
func ToDisplayAll(evs []Event) []Display {
	out := make([]Display, 0, len(evs))
	for _, e := range evs {
		out = append(out, ToDisplay(e))
	}
	return out
}

// Truncate shortens s to at most n runes, appending an ellipsis when anything
// was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// parseCount reads a string-typed upstream counter, treating garbage as zero.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
