package user

// UserResponse is the public view of a user. The password hash never leaves the service layer.
type UserResponse struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Username   *string `json:"username"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
}

func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
	}
}
