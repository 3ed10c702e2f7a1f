package fileman

import (
	"github.com/harrison/conslog/internal/console"
)

// Reason identifies why a file operation failed. Each reason maps to a
// message key in the translation catalog.
type Reason int

const (
	ExpectedFilePathNotDirectoryPath Reason = iota
	FailedToGetCurrentDirectory
	FailedToOpenFile
	FailedToOpenFileOrDirectory
	FailedToReadFile
	FailedToWriteFile
	MetadataIsNotAvailableOnThisPlatform
	PathDoesNotExist
)

// key returns the catalog message key for the reason.
func (r Reason) key() string {
	switch r {
	case ExpectedFilePathNotDirectoryPath:
		return "ExpectedFilePathNotDirectoryPath"
	case FailedToGetCurrentDirectory:
		return "FailedToGetCurrentDirectory"
	case FailedToOpenFile:
		return "FailedToOpenFile"
	case FailedToOpenFileOrDirectory:
		return "FailedToOpenFileOrDirectory"
	case FailedToReadFile:
		return "FailedToReadFile"
	case FailedToWriteFile:
		return "FailedToWriteFile"
	case MetadataIsNotAvailableOnThisPlatform:
		return "MetadataIsNotAvailableOnThisPlatform"
	default:
		return "PathDoesNotExist"
	}
}

// describe returns the fixed English description used for the plain error
// string. Rendered diagnostics go through the catalog instead.
func (r Reason) describe() string {
	switch r {
	case ExpectedFilePathNotDirectoryPath:
		return "expected file path not directory path"
	case FailedToGetCurrentDirectory:
		return "failed to get current directory"
	case FailedToOpenFile:
		return "failed to open file"
	case FailedToOpenFileOrDirectory:
		return "failed to open file or directory"
	case FailedToReadFile:
		return "failed to read file"
	case FailedToWriteFile:
		return "failed to write file"
	case MetadataIsNotAvailableOnThisPlatform:
		return "metadata is not available on this platform"
	default:
		return "path does not exist"
	}
}

// Error is a failed file operation. It implements console.Logger, so
// Consume can convert it into a log entry at the call boundary.
type Error struct {
	Reason Reason
	Path   string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Reason.describe()
	}
	return e.Reason.describe() + ": " + e.Path
}

// Log returns the entry rendered for this failure: the reason as an
// Error-kind title, plus a path description when a path is involved.
func (e *Error) Log() console.Log {
	title := console.Text{Key: e.Reason.key()}
	if e.Path == "" {
		return console.NewLog(console.KindError, title)
	}
	return console.NewLog(console.KindError, title, console.Text{
		Key:  "PathDescription",
		Data: map[string]any{"Path": e.Path},
	})
}
