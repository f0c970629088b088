package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CompoundFrequency is the number of compounding periods per year.
type CompoundFrequency int

const (
	Annual  CompoundFrequency = 1
	Monthly CompoundFrequency = 12
	Weekly  CompoundFrequency = 52
	Daily   CompoundFrequency = 365
)

// DefaultFrequency is used when a named frequency is not recognized.
const DefaultFrequency = Monthly

// Validate reports whether the frequency can drive a calculation.
func (f CompoundFrequency) Validate() error {
	if f <= 0 {
		return &InvalidParameterError{
			Field:  "frequency",
			Value:  float64(f),
			Reason: "must be greater than zero",
		}
	}
	return nil
}

func (f CompoundFrequency) String() string {
	for _, m := range compoundMethods {
		if m.Frequency == f {
			return m.Key
		}
	}
	return strconv.Itoa(int(f)) + "/year"
}

// FrequencySpec is either a named cadence or a raw number of periods per year,
// as supplied by a caller. Resolve turns it into a CompoundFrequency.
// The zero value means "not supplied" and resolves to DefaultFrequency.
type FrequencySpec struct {
	Name string
	Raw  int
	raw  bool
}

// NamedFrequency wraps a cadence name such as "weekly" or a numeric string
// such as "52".
func NamedFrequency(name string) FrequencySpec { return FrequencySpec{Name: name} }

// RawFrequency wraps an explicit number of periods per year. Unlike the zero
// FrequencySpec, RawFrequency(0) resolves to 0 and fails validation.
func RawFrequency(perYear int) FrequencySpec { return FrequencySpec{Raw: perYear, raw: true} }

// Resolve maps s onto periods per year. Raw values, zero included, are
// returned as-is and validated later by the calculator; unknown names fall
// back to DefaultFrequency.
func (s FrequencySpec) Resolve() CompoundFrequency {
	if s.Name == "" {
		if s.raw || s.Raw != 0 {
			return CompoundFrequency(s.Raw)
		}
		return DefaultFrequency
	}

	name := strings.TrimSpace(s.Name)
	if n, err := strconv.Atoi(name); err == nil {
		return CompoundFrequency(n)
	}

	switch strings.ToLower(name) {
	case "annual", "annually", "yearly":
		return Annual
	case "monthly":
		return Monthly
	case "weekly":
		return Weekly
	case "daily":
		return Daily
	}
	return DefaultFrequency
}

func (s FrequencySpec) String() string {
	if s.Name != "" {
		return s.Name
	}
	return strconv.Itoa(s.Raw)
}

// UnmarshalJSON accepts either a JSON string ("weekly", "52") or a number (52).
func (s *FrequencySpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = FrequencySpec{}
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = NamedFrequency(name)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("frequency must be a string or a number: %w", err)
	}
	if n != float64(int(n)) {
		return fmt.Errorf("frequency must be a whole number, got %v", n)
	}
	*s = RawFrequency(int(n))
	return nil
}

func (s FrequencySpec) MarshalJSON() ([]byte, error) {
	if s.Name != "" {
		return json.Marshal(s.Name)
	}
	return json.Marshal(s.Raw)
}

// CompoundMethod describes one of the named compounding cadences.
type CompoundMethod struct {
	Key          string            `json:"key"`
	Frequency    CompoundFrequency `json:"frequency"`
	Label        string            `json:"label"`
	Description  string            `json:"description"`
	IntervalDays int               `json:"interval_days"`
}

var compoundMethods = []CompoundMethod{
	{Key: "yearly", Frequency: Annual, Label: "Annual compounding", Description: "Interest is credited once a year", IntervalDays: 365},
	{Key: "monthly", Frequency: Monthly, Label: "Monthly compounding", Description: "Interest is credited every month", IntervalDays: 30},
	{Key: "weekly", Frequency: Weekly, Label: "Weekly compounding", Description: "Interest is credited every week", IntervalDays: 7},
	{Key: "daily", Frequency: Daily, Label: "Daily compounding", Description: "Interest is credited every day", IntervalDays: 1},
}

// CompoundMethods returns the named cadences in ascending frequency order.
func CompoundMethods() []CompoundMethod {
	out := make([]CompoundMethod, len(compoundMethods))
	copy(out, compoundMethods)
	return out
}
