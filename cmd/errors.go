package cmd

import "errors"

// reportedError marks an error a command has already shown to the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reported wraps err so Execute exits without printing it again
func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// exitMessage is what Execute prints for err, or "" when the command
// already printed it. Usage errors from cobra itself are never reported.
func exitMessage(err error) string {
	var r reportedError
	if err == nil || errors.As(err, &r) {
		return ""
	}
	return err.Error()
}
