package genesis

import (
	"fmt"
	"github.com/pkg/errors"
)

var ErrEntryNotFound = errors.New("file not found inside zip")

// Stage names the step of unpacking that failed.
type Stage byte

const (
	StageOpenArchive Stage = iota
	StageReadArchive
	StageFindEntry
	StageCreateOutput
	StageWriteOutput
	StagePlaceholder
)

func (s Stage) String() string {
	switch s {
	case StageOpenArchive:
		return "open archive"
	case StageReadArchive:
		return "read archive"
	case StageFindEntry:
		return "find entry"
	case StageCreateOutput:
		return "create output"
	case StageWriteOutput:
		return "write output"
	case StagePlaceholder:
		return "create placeholder"
	default:
		return fmt.Sprintf("stage %d", byte(s))
	}
}

// UnpackError is returned for every failure while materializing a network's genesis state.
type UnpackError struct {
	Network string
	Path    string
	Stage   Stage
	Err     error
}

func (e *UnpackError) Error() string {
	return fmt.Sprintf("failed to uncompress %v genesis state (%v) %v: %v", e.Network, e.Stage, e.Path, e.Err)
}

func (e *UnpackError) Cause() error {
	return e.Err
}

func (e *UnpackError) Unwrap() error {
	return e.Err
}
