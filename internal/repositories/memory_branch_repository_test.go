package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branches-api/internal/entities"
	"branches-api/pkg/types"
)

func TestMemoryBranchRepository_Contract(t *testing.T) {
	runBranchRepositoryContract(t, NewMemoryBranchRepository())
}

func TestMemoryBranchRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBranchRepository()

	saved, err := repo.Save(ctx, &entities.Branch{Name: "Central"})
	require.NoError(t, err)

	loaded, _, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	loaded.Name = "changed"
	loaded.BranchHolidays = append(loaded.BranchHolidays, entities.BranchHoliday{Date: types.NewDate(2025, time.May, 9), Name: "Victory Day"})

	again, _, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Central", again.Name)
	assert.Empty(t, again.BranchHolidays)
}

func TestMemoryBranchRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBranchRepository()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Save(ctx, &entities.Branch{Name: name})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[2].Name)
}

func TestMemoryBranchRepository_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBranchRepository()
	saved, err := repo.Save(ctx, &entities.Branch{Name: "Central"})
	require.NoError(t, err)

	first, _, _ := repo.FindByID(ctx, saved.ID)
	second, _, _ := repo.FindByID(ctx, saved.ID)

	first.BranchHolidays = append(first.BranchHolidays, entities.BranchHoliday{Date: types.NewDate(2025, time.March, 8), Name: "Women's Day"})
	second.BranchHolidays = append(second.BranchHolidays, entities.BranchHoliday{Date: types.NewDate(2025, time.March, 21), Name: "Navruz"})

	_, err = repo.Save(ctx, first)
	require.NoError(t, err)
	_, err = repo.Save(ctx, second)
	require.NoError(t, err)

	final, _, _ := repo.FindByID(ctx, saved.ID)
	require.Len(t, final.BranchHolidays, 1)
	assert.Equal(t, "Navruz", final.BranchHolidays[0].Name)
}
