package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// List is a normalised list body.
type List[T any] struct {
	Items []T
	// Total is the backend's own count when it sent one, else len(Items).
	Total int
}

// DecodeList accepts either a bare JSON array or an object whose "data"
// field is an array. Anything else is ErrMalformedResponse.
func DecodeList[T any](raw []byte) (List[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return List[T]{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return List[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return newList(items, -1), nil
	case '{':
		var env struct {
			Data  json.RawMessage `json:"data"`
			Total *int            `json:"total"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return List[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		data := bytes.TrimSpace(env.Data)
		if len(data) == 0 || data[0] != '[' {
			return List[T]{}, fmt.Errorf("%w: missing data array", ErrMalformedResponse)
		}
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return List[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		total := -1
		if env.Total != nil {
			total = *env.Total
		}
		return newList(items, total), nil
	default:
		return List[T]{}, fmt.Errorf("%w: unexpected body", ErrMalformedResponse)
	}
}

// GetList performs req and normalises the body with DecodeList.
func GetList[T any](ctx context.Context, c *Client, req Request) (List[T], error) {
	raw, err := c.DoRaw(ctx, req)
	if err != nil {
		return List[T]{}, err
	}
	return DecodeList[T](raw)
}

func newList[T any](items []T, total int) List[T] {
	if items == nil {
		items = []T{}
	}
	if total < 0 {
		total = len(items)
	}
	return List[T]{Items: items, Total: total}
}
