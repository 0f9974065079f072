package domain

// Inquiry is a single contact/quote request submitted through the site form.
// JSON names match the wire format the form posts and the admin view reads;
// db tags serve the SQLite-backed store.
type Inquiry struct {
	ID          int64  `json:"id" db:"id"`
	SubmittedAt string `json:"submittedAt" db:"submitted_at"` // RFC 3339, UTC
	Name        string `json:"name" db:"name"`
	Company     string `json:"company" db:"company"`
	Phone       string `json:"phone" db:"phone"`
	Email       string `json:"email" db:"email"`
	PipeSize    string `json:"pipeSize" db:"pipe_size"`
	Quantity    string `json:"quantity" db:"quantity"`
	Message     string `json:"message" db:"message"`
	Status      string `json:"status" db:"status"` // always "new" for now
}
