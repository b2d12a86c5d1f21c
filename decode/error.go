package decode

import (
	"errors"
	"strings"
)

// ErrDecode matches every *Error under errors.Is.
var ErrDecode = errors.New("decode: failure")

const (
	failPrefix   = "Failed reading: "
	tooFewBytes  = "too few bytes"
	emptyTrace   = "Empty call stack"
	traceHeading = "From:\t"
)

// Error is a decode failure: a message plus the labels that enclosed the
// failure site, outermost first.
type Error struct {
	Message string
	Trace   []string
}

// Error renders the message followed by the label trace:
//
//	<message>
//	From:	<outer>
//		<inner>
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteByte('\n')
	if len(e.Trace) == 0 {
		b.WriteString(emptyTrace)
		return b.String()
	}
	b.WriteString(traceHeading)
	b.WriteString(strings.Join(e.Trace, "\n\t"))
	b.WriteByte('\n')
	return b.String()
}

// Is reports whether target is ErrDecode.
func (e *Error) Is(target error) bool {
	return target == ErrDecode
}
