package token

import "fmt"

// FailureMode selects what POST /secret does with a token that fails
// signature verification.
type FailureMode string

const (
	// FailUnauthorized answers 401 like any other rejected token.
	FailUnauthorized FailureMode = "unauthorized"
	// FailFault treats the failure as an unexpected fault: the handler
	// panics and the recovery middleware reports a 500.
	FailFault FailureMode = "fault"
)

func ParseFailureMode(s string) (FailureMode, error) {
	switch m := FailureMode(s); m {
	case FailUnauthorized, FailFault:
		return m, nil
	case "":
		return FailUnauthorized, nil
	default:
		return "", fmt.Errorf("unknown invalid token policy %q", s)
	}
}
