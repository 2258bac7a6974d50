package entity

// Account is the currently-authenticated user handle supplied by the
// identity provider. A nil account is a terminal gate: no subscriptions are
// opened and no PINs are loaded without one.
type Account struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	EmailVerified bool   `json:"email_verified"`
}
