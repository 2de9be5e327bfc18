package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmployeeIDExists       = errors.New("employee ID already registered")
	ErrUsernameExists         = errors.New("username already taken")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin access required")
	ErrAccessDenied           = errors.New("access denied")
)
