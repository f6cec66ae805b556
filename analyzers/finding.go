package analyzers

// Finding is a single analysis result. Findings are produced in
// document order during one traversal.
type Finding struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// AnalysisError reports a rule or traversal failure. It carries only
// the underlying message; the caller converts it to a single report
// string at the boundary.
type AnalysisError struct {
	Message string
}

func (e *AnalysisError) Error() string {
	return e.Message
}
