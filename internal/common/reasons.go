package common

// ErrorDomain is the ErrorInfo domain of every error the server returns.
const ErrorDomain = "tokenkeeper"

// ErrorInfo reasons for failures outside the registry taxonomy. Registry
// failures use their Kind as the reason.
const (
	ReasonUserAlreadyExists   = "USER_ALREADY_EXISTS"
	ReasonUserNotFound        = "USER_NOT_FOUND"
	ReasonUsernameMismatch    = "USERNAME_MISMATCH"
	ReasonRefreshTokenExpired = "REFRESH_TOKEN_EXPIRED"
	ReasonInvalidArgument     = "INVALID_ARGUMENT"
)
