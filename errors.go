package manchu

import "fmt"

// Sentinel error kinds. Splitter failures (EmptyInput, WhitespaceOnly,
// NoCliticMatch) are expected signals absorbed by callers; ResourceParse
// is fatal at load time; Conversion is surfaced by ToNativeScriptInPlace
// but swallowed (as "invalid stem") inside the phonotactic validator.
var (
	ErrEmptyInput     = fmt.Errorf("manchu: empty input")
	ErrWhitespaceOnly = fmt.Errorf("manchu: whitespace-only input")
	ErrConversion     = fmt.Errorf("manchu: native-script conversion failed")
	ErrResourceParse  = fmt.Errorf("manchu: resource parse error")
	ErrNoCliticMatch  = fmt.Errorf("manchu: no clitic match")
)

// ResourceError reports a rejected row during resource table load,
// carrying enough context to find the offending line.
type ResourceError struct {
	File   string
	Line   int
	Reason string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("manchu: %s:%d: %s", e.File, e.Line, e.Reason)
}

func (e *ResourceError) Unwrap() error {
	return ErrResourceParse
}
