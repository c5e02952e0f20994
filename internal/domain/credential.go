package domain

// Credential is one login row: a username and the bcrypt hash of its
// password. Rows are provisioned out-of-band and never mutated by the
// serving path.
type Credential struct {
	Username     string
	PasswordHash string
}
