package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrInvalidFileType  = errors.New("profile picture must be a JPEG or PNG image")
	ErrFileTooLarge     = errors.New("profile picture must not exceed 5MB")
)
