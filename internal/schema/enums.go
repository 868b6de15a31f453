package schema

import "fmt"

// ExecutionStatus is the enumerated outcome of a run or measure, written
// verbatim into the document's *Status elements.
type ExecutionStatus string

const (
	StatusNotCompleted ExecutionStatus = "NOT_COMPLETED"
	StatusPass         ExecutionStatus = "PASS"
	StatusFail         ExecutionStatus = "FAIL"
	StatusError        ExecutionStatus = "ERROR"
	StatusTerminated   ExecutionStatus = "TERMINATED"
	StatusAborted      ExecutionStatus = "ABORTED"
)

// ExecutionStatuses lists every status the schema accepts, in schema order.
var ExecutionStatuses = []ExecutionStatus{
	StatusNotCompleted,
	StatusPass,
	StatusFail,
	StatusError,
	StatusTerminated,
	StatusAborted,
}

// ParseExecutionStatus maps a scenario token onto its schema status.
func ParseExecutionStatus(s string) (ExecutionStatus, error) {
	for _, status := range ExecutionStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown execution status %q", s)
}

// MeasureKind tags the runtime type of a measure value. The kind is carried
// explicitly on the Value element; readers never infer it from the text.
type MeasureKind string

const (
	KindBool     MeasureKind = "BOOL"
	KindString   MeasureKind = "STRING"
	KindInteger  MeasureKind = "INTEGER"
	KindReal     MeasureKind = "REAL"
	KindDateTime MeasureKind = "DATETIME"
)
