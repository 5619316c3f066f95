package idgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the shape of generated identifiers.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// String returns the wrapper name of the kind ("string" or "number").
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	default:
		return "string"
	}
}

// ParseKind maps "string" / "number" to a Kind. An empty name is text.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string", "text":
		return KindText, nil
	case "number", "numeric":
		return KindNumber, nil
	default:
		return KindText, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// ID is a generated identifier, either text or an integer.
// IDs are comparable; a text "1" and the number 1 are different IDs.
type ID struct {
	kind Kind
	text string
	num  int64
}

// Text wraps a string as an ID.
func Text(s string) ID {
	return ID{kind: KindText, text: s}
}

// Number wraps an integer as an ID.
func Number(n int64) ID {
	return ID{kind: KindNumber, num: n}
}

func (id ID) Kind() Kind { return id.kind }

func (id ID) IsNumber() bool { return id.kind == KindNumber }

// Int returns the numeric value. It is zero for text IDs.
func (id ID) Int() int64 { return id.num }

// String renders the ID as text; numbers are rendered in decimal.
func (id ID) String() string {
	if id.kind == KindNumber {
		return strconv.FormatInt(id.num, 10)
	}
	return id.text
}

// MarshalJSON encodes text IDs as JSON strings and numeric IDs as JSON numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.kind == KindNumber {
		return []byte(strconv.FormatInt(id.num, 10)), nil
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON accepts either a JSON string or an integer JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Text(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a string or an integer, got %s", data)
	}
	*id = Number(n)
	return nil
}

// Texts wraps each string as a text ID.
func Texts(values ...string) []ID {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		ids = append(ids, Text(v))
	}
	return ids
}
