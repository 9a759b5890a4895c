package domain

// Appointment is the projection of a calendar event returned to the front end.
type Appointment struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	HTMLLink    string `json:"htmlLink"`
}
