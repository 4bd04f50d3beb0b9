package validation

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/deppfellow/employee-api/internal/errs"
)

// IsJSONContentType reports whether a Content-Type header names JSON:
// application/json or any application/*+json type, parameters ignored.
func IsJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// DecodeJSONObject reads exactly one JSON object from r.
//
// An empty body, `null`, arrays, scalars and trailing data are all rejected
// with an invalid JSON error. A body cut off by http.MaxBytesReader yields a
// 413 instead.
func DecodeJSONObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, decodeError(err)
	}

	// `null` decodes into a nil map without error.
	if data == nil {
		return nil, errs.NewInvalidJSONError()
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, decodeError(err)
	}

	return data, nil
}

func decodeError(err error) error {
	if isTooLarge(err) {
		return errs.New(http.StatusRequestEntityTooLarge, "Request body too large")
	}
	return errs.NewInvalidJSONError()
}

func isTooLarge(err error) bool {
	if err == nil {
		return false
	}
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
