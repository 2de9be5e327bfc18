package user

// Identity is what a verified token says about the caller.
type Identity struct {
	UserID int64
	Role   Role
	Email  string
}

func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// CanAccess reports whether the caller may act on data owned by ownerID.
func (i Identity) CanAccess(ownerID int64) bool {
	return i.IsAdmin() || i.UserID == ownerID
}
