package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"recruai-web/internal/model"
	"recruai-web/internal/repository/contract"
	"recruai-web/internal/repository/implementation"
	"recruai-web/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestWaitlistRepositoryPostgres(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.Open(dsn, false)
	require.NoError(t, err)
	require.NoError(t, implementation.Migrate(db))

	repo := implementation.NewWaitlistRepository(db)
	ctx := context.Background()
	email := "integration-" + uuid.NewString() + "@example.com"

	t.Cleanup(func() {
		db.Where("email = ?", email).Delete(&model.WaitlistEntry{})
	})

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	entry := &model.WaitlistEntry{
		Id:       uuid.New(),
		Email:    email,
		Name:     "Integration",
		Role:     "organization",
		Source:   "landing",
		Metadata: datatypes.JSON(`{"utm_source":"test"}`),
	}
	require.NoError(t, repo.Create(ctx, entry))

	dup := *entry
	dup.Id = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &dup), contract.ErrDuplicateEntry)

	found, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entry.Id, found.Id)
	assert.Equal(t, "organization", found.Role)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	missing, err := repo.FindByEmail(ctx, "nobody-"+uuid.NewString()+"@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
