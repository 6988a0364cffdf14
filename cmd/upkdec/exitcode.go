package main

type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string {
	return e.msg
}

func (e *exitCodeError) ExitCode() int {
	return e.code
}

func usageError(msg string) *exitCodeError {
	return &exitCodeError{code: 2, msg: msg}
}
