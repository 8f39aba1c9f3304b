package fetch

import (
	"strconv"
)

type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindConnection Kind = "connection"
	KindHTTP       Kind = "http"
	KindOther      Kind = "other"
)

// Error describes a failed fetch. Status is set only for KindHTTP.
type Error struct {
	Kind   Kind
	Status int
	URL    string

	err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "request timed out"

	case KindConnection:
		return "connection failed"

	case KindHTTP:
		return "HTTP " + strconv.Itoa(e.Status)
	}

	if e.err != nil {
		return e.err.Error()
	}

	return "request failed"
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Timeout() bool {
	return e.Kind == KindTimeout
}
