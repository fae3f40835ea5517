package scope

import "esfront/pkg/source"

// CandidateKind classifies a token whose legality depends on context that
// is only known after it was parsed.
type CandidateKind uint8

const (
	YieldIdentifier CandidateKind = iota + 1
	AwaitIdentifier
	EvalIdentifier
	ArgumentsIdentifier
	LetIdentifier
	PreservedWordIdentifier
	AwaitExpressionInParameter
	YieldExpressionInParameter
)

var candidateNames = [...]string{
	YieldIdentifier:            "yield identifier",
	AwaitIdentifier:            "await identifier",
	EvalIdentifier:             "eval identifier",
	ArgumentsIdentifier:        "arguments identifier",
	LetIdentifier:              "let identifier",
	PreservedWordIdentifier:    "reserved word identifier",
	AwaitExpressionInParameter: "await expression in parameters",
	YieldExpressionInParameter: "yield expression in parameters",
}

func (k CandidateKind) String() string {
	if int(k) < len(candidateNames) {
		return candidateNames[k]
	}
	return "unknown"
}

// Candidate is a recorded position of a possibly illegal token.
type Candidate struct {
	Kind CandidateKind
	Pos  source.Position
}
