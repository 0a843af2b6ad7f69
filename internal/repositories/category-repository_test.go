package repositories

import (
	"context"
	"testing"

	"helpdesk-system/internal/dto"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_DuplicateNameReturnsConflict(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewCategoryRepository(pool)
	ctx := context.Background()

	payload := dto.CreateCategoryDTO{Name: "Réseau"}

	first, err := repo.CreateCategory(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "Réseau", first.Name)

	_, err = repo.CreateCategory(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
