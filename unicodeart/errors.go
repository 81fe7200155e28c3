package unicodeart

import "fmt"

// Kind identifies which step of a conversion failed. The set is closed; every
// kind has exactly one user-facing message.
type Kind int

const (
	// InvalidInputPath means the local input file could not be opened.
	InvalidInputPath Kind = iota
	// FailedToDecodeInput means the local file's bytes are not a recognized
	// image format.
	FailedToDecodeInput
	// FailedToDownload means the URL could not be fetched, including
	// non-success HTTP statuses.
	FailedToDownload
	// DownloadInvalid means the fetch succeeded but the response declared an
	// unrecognized image content type, or its bytes could not be decoded.
	DownloadInvalid
	// FailedToWriteToOutput means the output file could not be written.
	FailedToWriteToOutput
)

// Error ties a failure kind to the locator it concerns. Error() is the single
// line shown to the user; internal causes are never part of it.
type Error struct {
	Kind    Kind
	Locator string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidInputPath:
		return fmt.Sprintf("Failed to open: %s", e.Locator)
	case FailedToDecodeInput:
		return "Failed to decode input image!"
	case FailedToDownload:
		return fmt.Sprintf("Failed to download: %s", e.Locator)
	case DownloadInvalid:
		return fmt.Sprintf("Invalid source: %s", e.Locator)
	case FailedToWriteToOutput:
		return fmt.Sprintf("Failed to save output to: %s", e.Locator)
	}
	return fmt.Sprintf("unknown error: %s", e.Locator)
}

// Is matches on Kind alone, so errors.Is(err, &Error{Kind: FailedToDownload})
// holds regardless of the locator.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, locator string) *Error {
	return &Error{Kind: kind, Locator: locator}
}
