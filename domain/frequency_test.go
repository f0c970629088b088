package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencySpec_Resolve(t *testing.T) {
	tests := []struct {
		name string
		spec FrequencySpec
		want CompoundFrequency
	}{
		{"empty defaults to monthly", FrequencySpec{}, Monthly},
		{"yearly", NamedFrequency("yearly"), Annual},
		{"annual upper case", NamedFrequency("ANNUAL"), Annual},
		{"monthly", NamedFrequency("Monthly"), Monthly},
		{"weekly", NamedFrequency("weekly"), Weekly},
		{"daily padded", NamedFrequency(" daily "), Daily},
		{"numeric name", NamedFrequency("52"), Weekly},
		{"unknown name", NamedFrequency("hourly"), DefaultFrequency},
		{"raw", RawFrequency(4), 4},
		{"raw zero kept for validation", NamedFrequency("0"), 0},
		{"raw negative kept for validation", RawFrequency(-3), -3},
		{"explicit raw zero kept for validation", RawFrequency(0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.spec.Resolve())
		})
	}
}

func TestCompoundFrequency_Validate(t *testing.T) {
	assert.NoError(t, Daily.Validate())
	assert.NoError(t, CompoundFrequency(7).Validate())

	for _, f := range []CompoundFrequency{0, -12} {
		err := f.Validate()
		require.Error(t, err)
		ipe, ok := AsInvalidParameter(err)
		require.True(t, ok)
		assert.Equal(t, "frequency", ipe.Field)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestFrequencySpec_JSON(t *testing.T) {
	var in struct {
		A FrequencySpec `json:"a"`
		B FrequencySpec `json:"b"`
		C FrequencySpec `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"weekly","b":365,"c":null}`), &in))

	assert.Equal(t, Weekly, in.A.Resolve())
	assert.Equal(t, Daily, in.B.Resolve())
	assert.Equal(t, DefaultFrequency, in.C.Resolve())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"weekly","b":365,"c":0}`, string(out))
}

func TestFrequencySpec_JSONNumbers(t *testing.T) {
	var spec FrequencySpec
	require.NoError(t, json.Unmarshal([]byte(`0`), &spec))
	assert.Equal(t, CompoundFrequency(0), spec.Resolve())

	assert.Error(t, json.Unmarshal([]byte(`12.5`), &spec))
	assert.Error(t, json.Unmarshal([]byte(`true`), &spec))
}

func TestCompoundMethods(t *testing.T) {
	methods := CompoundMethods()
	require.Len(t, methods, 4)

	prev := CompoundFrequency(0)
	for _, m := range methods {
		assert.Greater(t, m.Frequency, prev)
		assert.Equal(t, m.Key, m.Frequency.String())
		prev = m.Frequency
	}

	methods[0].Label = "changed"
	assert.NotEqual(t, "changed", CompoundMethods()[0].Label)
	assert.Equal(t, "7/year", CompoundFrequency(7).String())
}

func TestReturnRatePercent(t *testing.T) {
	assert.Equal(t, 0.0, ReturnRatePercent(50, 0))
	assert.Equal(t, 50.0, ReturnRatePercent(50, 100))
}
