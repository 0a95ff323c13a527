package domain

// Identity is the snapshot of a user embedded in a session token at
// issuance. It is trusted for the token's lifetime and never re-fetched
// from the store, so role or status changes only take effect once the
// holder logs in again.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Complete reports whether every required identity field is present.
// Tokens missing any field are rejected on decode.
func (i Identity) Complete() bool {
	return i.ID != "" && i.Email != "" && i.Name != "" && i.Role != ""
}

// IsAdmin reports whether the identity bypasses role checks.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
