package hdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrOracleUnavailable reports that the symbol oracle could not
	// answer. The renderer treats it as "no information".
	ErrOracleUnavailable = errors.New("symbol oracle unavailable")
	// ErrResourceNotFound reports a missing external resource such as
	// an image file. The renderer degrades to a fallback label.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrRenderBusy reports a second render started on a Renderer that
	// already has one in flight. Use one Renderer per concurrent topic.
	ErrRenderBusy = errors.New("render already in progress")
)

// UnknownTagError reports a node whose tag has no registered rule. The
// render continues; the node is emitted in raw tagged form.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q", e.Tag)
}

// MalformedNodeError reports a node whose children or text violate the
// shape its tag requires. The render skips the subtree and continues.
type MalformedNodeError struct {
	Tag    Tag
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed %s node: %s", e.Tag, e.Reason)
}
