package marketstack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    marketstack.Sort
		wantErr bool
	}{
		{"ASC", marketstack.SortAsc, false},
		{"desc", marketstack.SortDesc, false},
		{" Descending ", marketstack.SortDesc, false},
		{"ascending", marketstack.SortAsc, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		got, err := marketstack.ParseSort(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, marketstack.ErrInvalidSort, tt.in)

			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.True(t, got.Valid())
	}

	assert.False(t, marketstack.Sort("date").Valid())
	assert.Equal(t, "DESC", marketstack.SortDesc.String())
}

func TestParseInterval(t *testing.T) {
	t.Parallel()

	for _, interval := range marketstack.Intervals() {
		got, err := marketstack.ParseInterval(interval.String())
		require.NoError(t, err)
		assert.Equal(t, interval, got)
	}

	got, err := marketstack.ParseInterval(" 1HOUR ")
	require.NoError(t, err)
	assert.Equal(t, marketstack.Interval1Hour, got)

	_, err = marketstack.ParseInterval("2min")
	require.ErrorIs(t, err, marketstack.ErrInvalidInterval)

	assert.Len(t, marketstack.Intervals(), 10)
}
