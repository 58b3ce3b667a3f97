package model

// State describes the lifecycle state of a certificate record. Absence of a
// record is not a state; a record only exists once a request is known.
type State string

var (
	// StateRequested marks a certificate that was requested but not yet confirmed.
	StateRequested State = "requested"
	// StateConfirmed marks a certificate confirmed by a reviewer.
	StateConfirmed State = "confirmed"
)

// Record is the reconciled representation of one certificate. Hash is derived
// from the fields and never changes after creation.
type Record struct {
	Hash          string    `json:"hash"`
	Fields        FieldList `json:"fields"`
	State         State     `json:"state"`
	RequestTx     string    `json:"requestTx,omitempty"`
	ConfirmTx     string    `json:"confirmTx,omitempty"`
	Confirmations uint64    `json:"confirmations"`
	Reviewer      string    `json:"reviewer,omitempty"`
}

// Confirmed reports whether the record has been promoted.
func (r *Record) Confirmed() bool {
	return r.State == StateConfirmed
}
