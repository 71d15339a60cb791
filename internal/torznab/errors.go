package torznab

import "encoding/xml"

// Err is a Torznab protocol error with its numeric code
type Err struct {
	Code        int
	Description string
}

func (e Err) Error() string {
	return e.Description
}

// Protocol error codes from the Newznab API specification
var (
	ErrIncorrectCreds     = Err{100, "Incorrect user credentials"}
	ErrMissingParameter   = Err{200, "Missing parameter"}
	ErrIncorrectParameter = Err{201, "Incorrect parameter"}
	ErrNoSuchFunction     = Err{202, "No such function"}
	ErrUnknownError       = Err{900, "Unknown error"}
)

// ErrorDoc is the XML error document returned for protocol failures
type ErrorDoc struct {
	XMLName     xml.Name `xml:"error"`
	Code        int      `xml:"code,attr"`
	Description string   `xml:"description,attr"`
}

// NewErrorDoc builds the error document for a protocol error,
// optionally overriding the generic description.
func NewErrorDoc(protoErr Err, description string) ErrorDoc {
	if description == "" {
		description = protoErr.Description
	}
	return ErrorDoc{
		Code:        protoErr.Code,
		Description: description,
	}
}
