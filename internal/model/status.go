package model

// FetchStatus represents the status of a lyrics fetch request
type FetchStatus string

const (
	// StatusRunning means the lookup is in progress on the worker
	StatusRunning FetchStatus = "Running"

	// StatusFound means the lookup finished and lyrics were found
	StatusFound FetchStatus = "Found"

	// StatusNotFound means the lookup finished without a match
	StatusNotFound FetchStatus = "NotFound"

	// StatusCanceled means the request was superseded by a newer one
	StatusCanceled FetchStatus = "Canceled"

	// StatusError means the lookup failed with an error
	StatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true if the request is still in flight
func (fs FetchStatus) IsActive() bool {
	return fs == StatusRunning
}

// IsFinished returns true if the request reached a terminal state
func (fs FetchStatus) IsFinished() bool {
	return fs == StatusFound || fs == StatusNotFound || fs == StatusCanceled || fs == StatusError
}
