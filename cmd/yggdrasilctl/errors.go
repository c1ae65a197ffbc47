package main

// Exit codes for CLI commands.
const (
	exitSuccess       = 0
	exitError         = 1
	exitConnectFailed = 2
	exitProtocolError = 3
	exitEmptyResponse = 4
	exitTimeout       = 5
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errConnectFailed(err error) *ExitError {
	return &ExitError{
		Code:    exitConnectFailed,
		Message: err.Error(),
	}
}

func errProtocol(message string) *ExitError {
	return &ExitError{
		Code:    exitProtocolError,
		Message: message,
	}
}

func errEmptyResponse(err error) *ExitError {
	return &ExitError{
		Code:    exitEmptyResponse,
		Message: err.Error(),
	}
}

func errTimeout(err error) *ExitError {
	return &ExitError{
		Code:    exitTimeout,
		Message: err.Error(),
	}
}
