package mboxheader

const (
	StatusMissing = "missing"
	StatusInvalid = "invalid"
	StatusDeleted = "deleted"
)

// ValidationResult is one finding about a message.
type ValidationResult struct {
	MsgIndex int    `json:"msgIndex"`
	Field    string `json:"field"`
	Status   string `json:"status"` // "missing", "invalid", "deleted"
	Detail   string `json:"detail,omitempty"`
}
