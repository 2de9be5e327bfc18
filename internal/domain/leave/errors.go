package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrInvalidRange         = errors.New("Start date must be before end date")
)
