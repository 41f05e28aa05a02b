package level

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "legacy", want: Key{Kind: KindLegacy}},
		{in: "", want: Key{Kind: KindUnspecified}},
		{in: "0", want: Key{Kind: KindNumeric, Value: 0}},
		{in: "5", want: Key{Kind: KindNumeric, Value: 5}},
		{in: "-1", want: Key{Kind: KindNumeric, Value: -1}},
		{in: "Legacy", wantErr: true},
		{in: "3.1", wantErr: true},
		{in: " 3", wantErr: true},
		{in: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidLevel))
				assert.Contains(t, err.Error(), tt.in)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_Compare(t *testing.T) {
	legacy := Key{Kind: KindLegacy}
	zero := Key{Kind: KindNumeric}
	one := Key{Kind: KindNumeric, Value: 1}
	unspecified := Key{Kind: KindUnspecified}

	// a numeric level "0" is distinct from, and after, legacy
	assert.Equal(t, -1, legacy.Compare(zero))
	assert.Equal(t, 1, zero.Compare(legacy))
	assert.Equal(t, -1, zero.Compare(one))
	assert.Equal(t, 0, one.Compare(Key{Kind: KindNumeric, Value: 1}))
	assert.Equal(t, -1, one.Compare(unspecified))
	assert.Equal(t, 0, unspecified.Compare(Key{Kind: KindUnspecified}))
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "legacy", Key{Kind: KindLegacy}.String())
	assert.Equal(t, "unspecified", Key{Kind: KindUnspecified}.String())
	assert.Equal(t, "42", Key{Kind: KindNumeric, Value: 42}.String())
}

func TestSort(t *testing.T) {
	in := []string{"", "10", "3", "legacy", "0", "2"}
	got, err := Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "0", "2", "3", "10", ""}, got)
	assert.Equal(t, []string{"", "10", "3", "legacy", "0", "2"}, in, "input must not be modified")
}

func TestSort_EqualKeysFallBackToString(t *testing.T) {
	got, err := Sort([]string{"01", "1", "001"})
	require.NoError(t, err)
	assert.Equal(t, []string{"001", "01", "1"}, got)
}

func TestSort_InvalidLevel(t *testing.T) {
	_, err := Sort([]string{"1", "R"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}
