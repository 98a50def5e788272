package gemini

// CandidateText exports candidateText for testing.
var CandidateText = candidateText //nolint:gochecknoglobals // test export
