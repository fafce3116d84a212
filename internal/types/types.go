package types

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

// Severity ranks how an issue is reported.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "ERROR":
		*s = SeverityError
	case "WARNING":
		*s = SeverityWarning
	case "INFO":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Issue is one loop decision reported for a unit.
type Issue struct {
	Rule       string    `json:"rule"`
	Category   string    `json:"category"`
	Filename   string    `json:"filename"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
	Note       string    `json:"note,omitempty"`
	Start      token.Pos `json:"start"`
	End        token.Pos `json:"end"`
	Severity   Severity  `json:"severity"`
}
