package analyzer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxTextLength is the largest text, in characters, the gateway accepts
	MaxTextLength = 10000

	EmptyTextMessage = "text cannot be empty"
	TooLongMessage   = "Text too long. Maximum 10,000 characters allowed."
	InternalMessage  = "Internal server error during analysis"
)

// ErrorKind tags why an analysis did not produce a result
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindSizeLimit
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindValidation:
		return "validation"
	case KindSizeLimit:
		return "size_limit"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ValidationError reports input that cannot be analyzed
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SizeLimitError reports input longer than the accepted maximum
type SizeLimitError struct {
	Length int
	Max    int
}

func (e *SizeLimitError) Error() string {
	return TooLongMessage
}

// Outcome is the tagged result of handling one text.
// Result is only meaningful when Kind is KindNone.
type Outcome struct {
	Kind    ErrorKind
	Result  Result
	Message string
	cause   error
}

// OK reports whether the outcome carries a result
func (o Outcome) OK() bool {
	return o.Kind == KindNone
}

// Err converts a failed outcome back into a Go error
func (o Outcome) Err() error {
	switch {
	case o.Kind == KindNone:
		return nil
	case o.cause == nil:
		return errors.New(o.Message)
	case o.Kind == KindInternal:
		return fmt.Errorf("analysis failed: %w", o.cause)
	default:
		return o.cause
	}
}

// Evaluate runs Analyze and folds its error into an Outcome.
// A panic during analysis is reported as KindInternal.
func Evaluate(text string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Internal(fmt.Errorf("panic: %v", r))
		}
	}()

	result, err := Analyze(text)
	if err != nil {
		return fromError(err)
	}
	return Outcome{Kind: KindNone, Result: result}
}

// CheckLength rejects text longer than max characters. A zero Outcome means
// the text is within bounds.
func CheckLength(text string, max int) Outcome {
	if length := utf8.RuneCountInString(text); length > max {
		return Outcome{
			Kind:    KindSizeLimit,
			Message: TooLongMessage,
			cause:   &SizeLimitError{Length: length, Max: max},
		}
	}
	return Outcome{}
}

// Internal wraps an unexpected failure. Message never includes err's text.
func Internal(err error) Outcome {
	return Outcome{Kind: KindInternal, Message: InternalMessage, cause: err}
}

func fromError(err error) Outcome {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return Outcome{Kind: KindValidation, Message: validationErr.Message, cause: err}
	}

	var sizeErr *SizeLimitError
	if errors.As(err, &sizeErr) {
		return Outcome{Kind: KindSizeLimit, Message: TooLongMessage, cause: err}
	}

	return Internal(err)
}
