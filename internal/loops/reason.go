package loops

import "fmt"

// Reason tells why a candidate was admitted or rejected.
type Reason uint8

const (
	// Admitted means every check passed and the loop may be rewritten.
	Admitted Reason = iota

	// IterableNotName means the loop iterates something other than a bare
	// variable name, such as a field access or a call result.
	IterableNotName

	// Unresolved means the iterable's type could not be determined.
	Unresolved

	// NotList means the iterable is not an ArrayList or List.
	NotList

	// NoDeclarations means the block declares no variables at all, so the
	// iterable cannot be one of its locals.
	NoDeclarations

	// AliasedByDeclaration means another variable is initialized from the
	// iterable.
	AliasedByDeclaration

	// NotLocallyConstructed means no declaration of the iterable in the
	// block is initialized by "new ArrayList".
	NotLocallyConstructed

	// Reassigned means the iterable is the target of an assignment.
	Reassigned

	// AliasedByAssignment means the iterable is assigned into another
	// variable.
	AliasedByAssignment

	// EscapesViaCall means the iterable is passed as a call argument.
	EscapesViaCall

	// MutatesList means the loop body calls a list mutation method on some
	// receiver.
	MutatesList

	// Suppressed means a nolint comment covers the loop.
	Suppressed
)

var reasonNames = [...]string{
	Admitted:              "admitted",
	IterableNotName:       "iterable-not-name",
	Unresolved:            "unresolved",
	NotList:               "not-list",
	NoDeclarations:        "no-declarations",
	AliasedByDeclaration:  "aliased-by-declaration",
	NotLocallyConstructed: "not-locally-constructed",
	Reassigned:            "reassigned",
	AliasedByAssignment:   "aliased-by-assignment",
	EscapesViaCall:        "escapes-via-call",
	MutatesList:           "mutates-list",
	Suppressed:            "suppressed",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// Rewritable reports whether the loop may be rewritten.
func (r Reason) Rewritable() bool { return r == Admitted }

// Verdict is the outcome of verifying one candidate.
type Verdict struct {
	Reason Reason
	Detail string // names the offending node; empty when admitted
}

func admit() Verdict { return Verdict{Reason: Admitted} }

func reject(r Reason, format string, args ...any) Verdict {
	return Verdict{Reason: r, Detail: fmt.Sprintf(format, args...)}
}
