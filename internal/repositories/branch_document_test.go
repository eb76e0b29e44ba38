package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branches-api/internal/entities"
	"branches-api/pkg/types"
)

func TestHolidaysEncoding(t *testing.T) {
	raw, err := encodeHolidays(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	raw, err = encodeHolidays([]entities.BranchHoliday{{Date: types.NewDate(2025, time.December, 25), Name: "Christmas"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2025-12-25","name":"Christmas"}]`, string(raw))

	decoded, err := decodeHolidays(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Christmas", decoded[0].Name)

	for _, empty := range []string{"", "null", "[]"} {
		decoded, err := decodeHolidays([]byte(empty))
		require.NoError(t, err)
		assert.NotNil(t, decoded)
		assert.Empty(t, decoded)
	}

	_, err = decodeHolidays([]byte(`[{"date":"25.12.2025"}]`))
	assert.Error(t, err)
}

func TestBranchDocument(t *testing.T) {
	created := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	raw, err := encodeBranch(&entities.Branch{ID: "x", Name: "Central", CreationDate: created})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"branchHolidays":[]`)

	branch, err := decodeBranch(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", branch.ID)
	assert.True(t, created.Equal(branch.CreationDate))
	assert.NotNil(t, branch.BranchHolidays)
}
