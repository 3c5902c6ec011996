package backend

// Outcome is the tagged result of a submission: either success (with an
// optional confirmation message) or failure (with an optional reason). It is
// only constructed at the client boundary, so partial or ambiguous backend
// responses never leak past this package.
type Outcome struct {
	success bool
	message string
	reason  string
}

// SuccessOutcome builds a successful outcome carrying the backend's
// confirmation message, which may be empty.
func SuccessOutcome(message string) Outcome {
	return Outcome{success: true, message: message}
}

// FailureOutcome builds a failed outcome. An empty reason means the backend
// gave none (or the response was unusable).
func FailureOutcome(reason string) Outcome {
	return Outcome{reason: reason}
}

// Success reports whether the backend accepted the submission.
func (o Outcome) Success() bool { return o.success }

// Message returns the confirmation message of a successful outcome.
func (o Outcome) Message() string { return o.message }

// Reason returns the failure reason, empty when the backend gave none.
func (o Outcome) Reason() string { return o.reason }
