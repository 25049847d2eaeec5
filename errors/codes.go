package errors

// Kind classifies a failure. The set is closed.
type Kind int

const (
	// KindUnknown is the zero value; errors of foreign types map here.
	KindUnknown Kind = iota
	// KindBadRequest indicates the request could not be completed or the
	// response body had the wrong shape.
	KindBadRequest
	// KindParameter indicates invalid caller input.
	KindParameter
	// KindParseJSON indicates malformed JSON or an upstream rejection.
	KindParseJSON
	// KindParse indicates a value that could not be interpreted.
	KindParse
	// KindFileRead indicates a local file could not be read.
	KindFileRead
	// KindFileWrite indicates a local file could not be written.
	KindFileWrite
	// KindSerializeJSON indicates a value could not be encoded as JSON.
	KindSerializeJSON
	// KindLock indicates shared state could not be locked.
	KindLock
)

var kindNames = map[Kind]string{
	KindUnknown:       "UNKNOWN_ERROR",
	KindBadRequest:    "BAD_REQUEST",
	KindParameter:     "PARAMETER_ERROR",
	KindParseJSON:     "PARSE_JSON_ERROR",
	KindParse:         "PARSE_ERROR",
	KindFileRead:      "FILE_READ_ERROR",
	KindFileWrite:     "FILE_WRITE_ERROR",
	KindSerializeJSON: "SERIALIZE_JSON_ERROR",
	KindLock:          "LOCK_ERROR",
}

// String returns the stable upper-snake name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}
