package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/kbukum/picacg/page"
)

// Field decodes the sub-tree at path with encoding/json. A missing path is
// an error.
func Field[T any](path string) Decoder[T] {
	return func(root gjson.Result) (T, error) {
		var v T
		node := root.Get(path)
		if !node.Exists() {
			return v, fmt.Errorf("missing field %q", path)
		}
		if err := json.Unmarshal([]byte(node.Raw), &v); err != nil {
			return v, fmt.Errorf("field %q: %w", path, err)
		}
		return v, nil
	}
}

// Page decodes the paged list at path, each document with encoding/json.
func Page[T any](path string) Decoder[page.Page[T]] {
	return func(root gjson.Result) (page.Page[T], error) {
		node := root.Get(path)
		if !node.Exists() {
			return page.Page[T]{}, fmt.Errorf("missing field %q", path)
		}
		return page.Decode(node, page.JSON[T])
	}
}

// Ignore accepts any successful envelope.
func Ignore(gjson.Result) (struct{}, error) {
	return struct{}{}, nil
}
