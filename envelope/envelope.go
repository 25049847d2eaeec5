// Package envelope decodes the {code, message, data} wrapper returned by
// every API response. Only code 200 is a success; the payload decoder runs
// for nothing else.
package envelope

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/tidwall/gjson"

	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/httpclient"
)

// SuccessCode is the only code treated as success.
const SuccessCode = 200

var errInvalidJSON = errors.New("invalid JSON")

// Decoder extracts the typed payload from the parsed envelope root.
type Decoder[T any] func(root gjson.Result) (T, error)

// Parse decodes body as an envelope and runs decode on success.
//
// A body that was not read as text fails with BadRequest(noTextMessage).
// Invalid JSON, a decoder failure and a non-200 code all fail with
// ParseJsonError. For a non-200 code the message is the envelope's message
// as sent, and the code and error fields are attached as details.
func Parse[T any](body httpclient.Body, decode Decoder[T], noTextMessage string) (T, error) {
	var zero T
	if !body.IsText() {
		return zero, apperrors.BadRequest(noTextMessage)
	}

	root, err := parseJSON(body.Text)
	if err != nil {
		return zero, err
	}

	code := root.Get("code")
	if code.Type == gjson.Number && code.Raw == strconv.Itoa(SuccessCode) {
		v, err := decode(root)
		if err != nil {
			return zero, wrapDecodeError(err)
		}
		return v, nil
	}
	return zero, rejection(root)
}

func parseJSON(text string) (gjson.Result, error) {
	// gjson is lenient; encoding/json supplies the syntax error text.
	if !gjson.Valid(text) {
		var v any
		err := json.Unmarshal([]byte(text), &v)
		if err == nil {
			err = errInvalidJSON
		}
		return gjson.Result{}, apperrors.Wrap(apperrors.KindParseJSON, "Failed to parse JSON response", err)
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		return gjson.Result{}, apperrors.ParseJSON("Failed to parse JSON response: expected an object")
	}
	return root, nil
}

func rejection(root gjson.Result) *apperrors.Error {
	msg := root.Get("message")
	text := msg.String()
	if !msg.Exists() {
		text = "unexpected response code " + root.Get("code").Raw
	}
	e := apperrors.ParseJSON(text)
	if c := root.Get("code"); c.Exists() {
		e.WithDetail("code", c.Int())
	}
	if v := root.Get("error"); v.Exists() {
		e.WithDetail("error", v.String())
	}
	return e
}

func wrapDecodeError(err error) error {
	if e, ok := apperrors.As(err); ok && e.Kind == apperrors.KindParseJSON {
		return err
	}
	return apperrors.Wrap(apperrors.KindParseJSON, "Failed to decode response data", err)
}
