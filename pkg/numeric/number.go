// Package numeric holds request values that clients send either as JSON
// numbers or as numeric strings ("9.99", "1").
package numeric

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number keeps the raw text of the value. Anything that is not a string is
// kept verbatim so validation can reject it with a field-specific message
// instead of failing the whole body.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}

	*n = Number(data)
	return nil
}

func (n Number) String() string {
	return string(n)
}

func (n Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(n))
}

func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

func (n Number) Int() (int, error) {
	return strconv.Atoi(string(n))
}
