package models

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Timestamp decodes the exchange's unix-seconds values, which arrive either as
// JSON numbers (1444266681) or as quoted fractional strings
// ("1444272165.252370982").
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	if len(raw) == 0 || string(raw) == "null" {
		t.Time = time.Time{}
		return nil
	}

	secs, err := decimal.NewFromString(string(raw))
	if err != nil {
		return fmt.Errorf("Некорректная метка времени %s: %w", data, err)
	}

	whole := secs.IntPart()
	nanos := secs.Sub(decimal.NewFromInt(whole)).Shift(9).IntPart()
	t.Time = time.Unix(whole, nanos).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	secs := decimal.New(t.UnixNano(), -9)
	return []byte(`"` + secs.String() + `"`), nil
}
