package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/paradigma"
)

var testLimits = QueryConfig{MaxInputRunes: 32, MaxCandidates: 100, BatchWorkers: 2, MaxBatchWords: 3}

func TestQueryConfig_Check(t *testing.T) {
	tests := []struct {
		name   string
		limits QueryConfig
		raw    string
		want   error
	}{
		{"within limits", testLimits, "amo", nil},
		{"too long", testLimits, strings.Repeat("a", 33), paradigma.ErrInputTooLong},
		{"too ambiguous", testLimits, "amantissimus", paradigma.ErrTooAmbiguous},
		{"zero limits", QueryConfig{}, strings.Repeat("i", 100), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Check(tt.raw)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQueryConfig_Query(t *testing.T) {
	idx, err := paradigma.LoadIndex(os.DirFS("../../testdata"))
	require.NoError(t, err)

	entries, err := testLimits.Query(idx, "Roma")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = testLimits.Query(idx, strings.Repeat("a", 33))
	assert.ErrorIs(t, err, paradigma.ErrInputTooLong)
	_, err = testLimits.Query(idx, "amantissimus")
	assert.ErrorIs(t, err, paradigma.ErrTooAmbiguous)
}

func TestQueryConfig_CheckBatch(t *testing.T) {
	assert.NoError(t, testLimits.CheckBatch([]string{"amo", "rosa", "rex"}))
	assert.ErrorIs(t, testLimits.CheckBatch([]string{"amo", "rosa", "rex", "puella"}), ErrBatchTooLarge)
	assert.ErrorIs(t, testLimits.CheckBatch([]string{"amo", "amantissimus"}), paradigma.ErrTooAmbiguous)
	assert.NoError(t, QueryConfig{}.CheckBatch(make([]string, 1000)))
}

func TestQueryConfig_MaxBatchBytes(t *testing.T) {
	assert.Equal(t, int64(3*(32*12+8)+1024), testLimits.MaxBatchBytes())
	assert.Zero(t, QueryConfig{MaxInputRunes: 32}.MaxBatchBytes())
	assert.Zero(t, QueryConfig{MaxBatchWords: 3}.MaxBatchBytes())
}
