package lead

// Upsert actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Extracted echoes which payload values resolved for the fields most prone
// to alias drift. Debugging aid, not business logic.
type Extracted struct {
	City       any `json:"city"`
	ClientName any `json:"client_name"`
}

// ExtractedColumns reports the sheet columns those fields resolved to.
type ExtractedColumns struct {
	City       int `json:"city"`
	ClientName int `json:"client_name"`
}

// Result describes a completed upsert.
type Result struct {
	Action    string
	Phone     string
	Extracted Extracted
	Columns   ExtractedColumns
}
