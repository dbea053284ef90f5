package model

// Moderation states for a report.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Report represents one phone compatibility report from the reports table.
// Model holds the canonical (uppercased) model identifier and is unique
// across all reports.
type Report struct {
	ID             string
	UserID         string
	AuthorNickname string
	CommercialName string
	Model          string
	Works          bool
	Bands          []string
	Provinces      []string
	Observations   string
	Status         string
	ReviewerID     string
	CreatedAt      int64
}
