package entities

// DateLayout is the wire format for user-facing dates (service dates,
// due dates). Timestamps use time.Time / RFC3339 as usual.
const DateLayout = "2006-01-02"

// Vehicle is a registered customer vehicle.
//
// Catalog semantics:
//   - IDs are monotonic counters owned by the repository, never derived
//     from collection size.
//   - Orders reference vehicles by id only; denormalized display data is
//     always resolved against the catalog to avoid drift.
type Vehicle struct {
	ID          int64  `json:"id"`
	Plate       string `json:"plate"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Owner       string `json:"owner"`
	LastService string `json:"last_service"`
}
