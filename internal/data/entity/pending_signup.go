package entity

// PendingSignup is the cache-resident record of an unverified sign-up
// attempt. It lives under key "signup:<email>" with a TTL equal to the
// configured code expiry; eviction is the expiry mechanism.
type PendingSignup struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Code         string `json:"code"`
	// CreatedAt is UTC epoch millis of the most recent code generation,
	// not of the record itself. The cooldown window is measured from it.
	CreatedAt int64 `json:"created_at"`
}
