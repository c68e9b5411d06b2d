package player

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies player failures so callers can react to the cause
// without parsing messages.
type Kind int

const (
	// KindDeviceSetup means the audio output device could not be acquired.
	KindDeviceSetup Kind = iota
	// KindFileNotFound means the media file does not exist.
	KindFileNotFound
	// KindPermissionDenied means the media file exists but cannot be read.
	KindPermissionDenied
	// KindGenericIO covers all other I/O failures while opening media.
	KindGenericIO
	// KindDecoderFailed means the media bytes could not be decoded:
	// the format is unsupported or the data is corrupt.
	KindDecoderFailed
	// KindInvalidConfig means a settings change would produce an impossible
	// stream, such as trimming more than the asset's total length.
	KindInvalidConfig
	// KindOperationFailed is reserved for transport misuse. Play on an
	// already-playing sound is a no-op success, so nothing returns it today.
	KindOperationFailed
)

func (k Kind) String() string {
	switch k {
	case KindDeviceSetup:
		return "DeviceSetup"
	case KindFileNotFound:
		return "FileNotFound"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindGenericIO:
		return "GenericIO"
	case KindDecoderFailed:
		return "DecoderFailed"
	case KindInvalidConfig:
		return "InvalidConfig"
	case KindOperationFailed:
		return "OperationFailed"
	default:
		return "Unknown"
	}
}

// Error is a typed player failure with a human-readable message.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// classifyOpen maps a media open failure to its error kind.
func classifyOpen(path string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(KindFileNotFound, err, "could not find a file at %s", path)
	case errors.Is(err, fs.ErrPermission):
		return newError(KindPermissionDenied, err, "permission to access %s was denied", path)
	default:
		return newError(KindGenericIO, err, "could not open %s: %v", path, err)
	}
}
