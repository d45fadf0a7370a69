package events

// Attendee is a user attached to an event (organizer or RSVP'd guest) as the
// upstream API reports them.
type Attendee struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	URL    string `json:"url"`
}

// Organizer extends Attendee with the extra fields the upstream attaches to
// an event's user_data. Latitude and longitude arrive as strings and may be
// absent entirely.
type Organizer struct {
	Attendee
	IsVerified int    `json:"is_verified"`
	Lat        string `json:"lat,omitempty"`
	Lng        string `json:"lng,omitempty"`
}

// Event is a raw upstream record. The upstream is only partially trusted:
// dates are MM/DD/YY strings, times are HH:MM:SS strings, and the counts are
// string-typed integers. Records must pass through Normalize before they are
// handed to a template.
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	StartDate       string    `json:"start_date"`
	StartTime       string    `json:"start_time"`
	EndDate         string    `json:"end_date"`
	EndTime         string    `json:"end_time"`
	PosterID        string    `json:"poster_id"`
	Cover           string    `json:"cover"`
	Organizer       Organizer `json:"user_data"`
	URL             string    `json:"url"`
	IsGoing         bool      `json:"is_going"`
	IsInterested    bool      `json:"is_interested"`
	GoingCount      string    `json:"going_count"`
	InterestedCount string    `json:"interested_count"`
}

// AttendanceStatus is the viewer's RSVP state for a single event.
type AttendanceStatus string

const (
	AttendanceNone       AttendanceStatus = "none"
	AttendanceGoing      AttendanceStatus = "going"
	AttendanceInterested AttendanceStatus = "interested"
)

// Valid reports whether s is one of the three known RSVP states.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceNone, AttendanceGoing, AttendanceInterested:
		return true
	}
	return false
}
