package server

import "time"

// Summary is one row of a mailbox listing.
type Summary struct {
	ID          int    `json:"id"`
	From        string `json:"from"`
	Date        string `json:"date"`
	Subject     string `json:"subject"`
	Importance  string `json:"importance,omitempty"`
	Attachments int    `json:"attachments"`
	Signed      bool   `json:"signed,omitempty"`
	// Timestamp orders the listing. Not exported to JSON.
	Timestamp time.Time `json:"-"`
}
