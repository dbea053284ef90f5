package model

// Subscription marks a user as wanting a DM whenever a report is approved.
type Subscription struct {
	UserID    string
	CreatedAt int64
}
