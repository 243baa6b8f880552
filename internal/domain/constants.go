package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Phone digit-count heuristic: valid numbers have between MinPhoneDigits and
// MaxPhoneDigits digits after normalization.
const (
	MinPhoneDigits = 9
	MaxPhoneDigits = 12
)
