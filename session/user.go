package session

// AnonymousUsername is the sentinel username of the unauthenticated
// default record.
const AnonymousUsername = "Anonymous"

// UserRecord is the persisted identity snapshot. A fresh session always
// holds the canonical default record, never a nil or absent user.
type UserRecord struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	ImageURL    string `json:"image_url"`
	IsSuperuser bool   `json:"is_superuser"`
	IsStaff     bool   `json:"is_staff"`
}

// DefaultUser returns the canonical unauthenticated record.
func DefaultUser() UserRecord {
	return UserRecord{
		Username: AnonymousUsername,
		Role:     "Guest",
	}
}

// IsAnonymous reports whether the record is the unauthenticated
// sentinel. Any record whose username differs is a valid user.
func (u UserRecord) IsAnonymous() bool {
	return u.Username == AnonymousUsername
}
