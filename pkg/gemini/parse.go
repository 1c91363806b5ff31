package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
)

var ErrNoJSONArray = errors.New("gemini: no JSON array in response")

var jsonArrayRegex = regexp.MustCompile(`\[[\s\S]*\]`)

// ParseJSONArray decodes text as a JSON array of T. Models often wrap the array
// in prose or code fences, so when the direct decode fails the span from the first
// '[' to the last ']' is decoded instead.
func ParseJSONArray[T any](text string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items, nil
	}

	match := jsonArrayRegex.FindString(text)
	if match == "" {
		return nil, ErrNoJSONArray
	}
	items = nil
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		return nil, errors.Join(ErrNoJSONArray, err)
	}
	return items, nil
}

// FlexString accepts a JSON string or number, "year": 1999 and "year": "1999" both decode to "1999".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}
