package sheetpress

import "fmt"

// Stage names used in StageError.
const (
	StageAnchors   = "anchors"
	StageIndex     = "index"
	StageAggregate = "aggregate"
)

// StageError reports a pipeline stage failure. The whole run aborts; no
// partial encoding is produced.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("compression stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
