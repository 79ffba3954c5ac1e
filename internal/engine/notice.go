package engine

import "errors"

// NoticeLevel grades a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
)

func (l NoticeLevel) String() string {
	if l == NoticeWarn {
		return "warn"
	}
	return "info"
}

// Notice is a transient, non-blocking message for the user.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// RefusalError reports a command the model declined to perform,
// such as deleting the last remaining table row.
type RefusalError struct {
	Reason string
}

func (e *RefusalError) Error() string { return e.Reason }

// Refuse builds a RefusalError.
func Refuse(reason string) error {
	return &RefusalError{Reason: reason}
}

// IsRefusal reports whether err is or wraps a RefusalError.
func IsRefusal(err error) bool {
	var r *RefusalError
	return errors.As(err, &r)
}
