package domain

// UserState represents user's current position in the submission dialog
type UserState string

const (
	StateIdle           UserState = "idle"
	StateAwaitingNumber UserState = "awaiting_number"
	StateAwaitingPhoto  UserState = "awaiting_photo"
)

// Session holds temporary data for user's in-flight submission
type Session struct {
	State           UserState
	SubmittedNumber int
}
