package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid email or password"
	errEmailTaken         = "Email is already registered"
	errUserNotFound       = "User not found"
	errTaskNotFound       = "Task not found"
	errTitleRequired      = "Title is required"
)
