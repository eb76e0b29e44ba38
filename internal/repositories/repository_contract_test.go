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

// runBranchRepositoryContract проверяет поведение, общее для всех реализаций хранилища.
func runBranchRepositoryContract(t *testing.T, repo BranchRepositoryInterface) {
	ctx := context.Background()
	created := time.Date(2025, time.January, 2, 3, 4, 5, 123456000, time.UTC)

	t.Run("missing id is not an error", func(t *testing.T) {
		branch, found, err := repo.FindByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, branch)
	})

	var id string
	t.Run("save without id inserts", func(t *testing.T) {
		input := &entities.Branch{
			Name: "Central", EmailAddress: "a@b.com", PhoneNumber: "1234567890",
			State: entities.BranchStateActive, CreationDate: created, LastModifiedDate: created,
			BranchHolidays: []entities.BranchHoliday{},
		}
		saved, err := repo.Save(ctx, input)
		require.NoError(t, err)
		require.NotEmpty(t, saved.ID)
		assert.Empty(t, input.ID, "input entity must not be mutated")
		id = saved.ID

		loaded, found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Central", loaded.Name)
		assert.True(t, created.Equal(loaded.CreationDate))
		assert.NotNil(t, loaded.BranchHolidays)
		assert.Empty(t, loaded.BranchHolidays)
	})

	t.Run("save with id replaces whole document", func(t *testing.T) {
		loaded, found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)

		loaded.PhoneNumber = "0987654321"
		loaded.BranchHolidays = append(loaded.BranchHolidays,
			entities.BranchHoliday{Date: types.NewDate(2025, time.December, 25), Name: "Christmas"},
			entities.BranchHoliday{Date: types.NewDate(2025, time.January, 1), Name: "New Year"},
		)
		saved, err := repo.Save(ctx, loaded)
		require.NoError(t, err)
		assert.Equal(t, id, saved.ID)

		reloaded, _, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "0987654321", reloaded.PhoneNumber)
		require.Len(t, reloaded.BranchHolidays, 2)
		assert.Equal(t, "Christmas", reloaded.BranchHolidays[0].Name)
		assert.Equal(t, "2025-01-01", reloaded.BranchHolidays[1].Date.String())
	})

	t.Run("find all returns every branch", func(t *testing.T) {
		_, err := repo.Save(ctx, &entities.Branch{
			Name: "North", EmailAddress: "n@b.com", PhoneNumber: "1112223333",
			State: entities.BranchStateActive, CreationDate: created.Add(time.Hour), LastModifiedDate: created.Add(time.Hour),
		})
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(all))
		for _, b := range all {
			names = append(names, b.Name)
		}
		assert.Contains(t, names, "Central")
		assert.Contains(t, names, "North")
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
