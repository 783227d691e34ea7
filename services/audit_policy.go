package services

// LogPolicy decides what a failed audit log write does to the operation that triggered it
type LogPolicy int

const (
	// PropagateLogErrors fails the operation when its audit log cannot be written,
	// even though the primary write has already been committed
	PropagateLogErrors LogPolicy = iota
	// BestEffortLog reports the failure to the diagnostic logger and lets the operation succeed
	BestEffortLog
)

// String returns the policy name
func (p LogPolicy) String() string {
	switch p {
	case PropagateLogErrors:
		return "propagate-log-errors"
	case BestEffortLog:
		return "best-effort-log"
	default:
		return "unknown"
	}
}

// AuditPolicy holds the log policy of each audited user operation
type AuditPolicy struct {
	Add    LogPolicy
	View   LogPolicy
	Update LogPolicy
}

// DefaultAuditPolicy propagates audit failures on add and view, and tolerates them on update
func DefaultAuditPolicy() AuditPolicy {
	return AuditPolicy{
		Add:    PropagateLogErrors,
		View:   PropagateLogErrors,
		Update: BestEffortLog,
	}
}
