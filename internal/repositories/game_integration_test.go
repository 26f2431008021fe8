package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avdeev21/retro-market/internal/models"
)

func setupMarketPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if os.Getenv("POSTGRES_INTEGRATION") == "" {
		t.Skip("set POSTGRES_INTEGRATION to run container-backed tests")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestGameRepositories_Postgres(t *testing.T) {
	db, teardown := setupMarketPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	consoles := NewConsoleWriteRepository(db)
	sellers := NewSellerWriteRepository(db)
	writes := NewGameWriteRepository(db)
	reads := NewGameReadRepository(db)

	consoleID, err := consoles.Save(ctx, "SNES")
	require.NoError(t, err)
	otherConsoleID, err := consoles.Save(ctx, "Sega Genesis")
	require.NoError(t, err)

	sellerID, err := sellers.Save(ctx, models.SellerDB{
		Username:     "retro99",
		Email:        "retro99@example.com",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		Rating:       5.0,
		MemberSince:  time.Now(),
	})
	require.NoError(t, err)

	olderID, err := writes.Save(ctx, models.GameDB{
		Title:      "Chrono Trigger",
		ConsoleID:  consoleID,
		SellerID:   sellerID,
		Condition:  "Excellent",
		Rarity:     "Rare",
		Price:      189.99,
		DateListed: time.Now().Add(-time.Hour),
		Images:     []string{"cart.jpg", "box.png"},
	})
	require.NoError(t, err)

	newerID, err := writes.Save(ctx, models.GameDB{
		Title:      "Sonic the Hedgehog 2",
		ConsoleID:  otherConsoleID,
		SellerID:   sellerID,
		Condition:  "Fair",
		Rarity:     "Common",
		Price:      9.99,
		DateListed: time.Now(),
	})
	require.NoError(t, err)

	t.Run("ListAll orders newest first and hydrates images", func(t *testing.T) {
		listings, err := reads.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 2)

		assert.Equal(t, newerID, listings[0].GameID)
		assert.Equal(t, olderID, listings[1].GameID)
		assert.Equal(t, []string{"cart.jpg", "box.png"}, listings[1].Images)
		assert.Equal(t, []string{}, listings[0].Images)
	})

	t.Run("GetByID resolves console and seller", func(t *testing.T) {
		listing, err := reads.GetByID(ctx, olderID)
		require.NoError(t, err)
		require.NotNil(t, listing)

		assert.Equal(t, "Chrono Trigger", listing.Title)
		assert.Equal(t, "SNES", listing.Console.Name)
		require.NotNil(t, listing.Seller)
		assert.Equal(t, "retro99", listing.Seller.Username)
	})

	t.Run("GetByID unknown game is nil, nil", func(t *testing.T) {
		listing, err := reads.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, listing)
	})

	t.Run("Search filters conjunctively", func(t *testing.T) {
		listings, err := reads.Search(ctx, models.ListingFilter{
			Console:   consoleID.String(),
			Condition: "Excellent",
		})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, olderID, listings[0].GameID)

		listings, err = reads.Search(ctx, models.ListingFilter{
			Console: consoleID.String(),
			Rarity:  "Common",
		})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("Search tolerates malformed console ids", func(t *testing.T) {
		listings, err := reads.Search(ctx, models.ListingFilter{Console: "not-a-uuid"})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("GetBySeller joins consoles only", func(t *testing.T) {
		listings, err := reads.GetBySeller(ctx, sellerID)
		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Nil(t, listings[0].Seller)
		assert.NotEmpty(t, listings[0].Console.Name)
	})

	t.Run("IsOwner", func(t *testing.T) {
		owner, err := reads.IsOwner(ctx, olderID, sellerID)
		require.NoError(t, err)
		assert.True(t, owner)

		owner, err = reads.IsOwner(ctx, olderID, uuid.New())
		require.NoError(t, err)
		assert.False(t, owner)
	})

	t.Run("duplicate filenames append and remove together", func(t *testing.T) {
		ok, err := writes.AppendImage(ctx, newerID, "label.jpg")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = writes.AppendImage(ctx, newerID, "label.jpg")
		require.NoError(t, err)
		assert.True(t, ok)

		listing, err := reads.GetByID(ctx, newerID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, []string{"label.jpg", "label.jpg"}, listing.Images)

		removed, err := writes.RemoveImage(ctx, newerID, "label.jpg")
		require.NoError(t, err)
		assert.True(t, removed)

		listing, err = reads.GetByID(ctx, newerID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Empty(t, listing.Images)
	})

	t.Run("AppendImage to unknown game", func(t *testing.T) {
		ok, err := writes.AppendImage(ctx, uuid.New(), "ghost.jpg")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SetPrimaryImage", func(t *testing.T) {
		ok, err := writes.SetPrimaryImage(ctx, olderID, "box.png")
		require.NoError(t, err)
		assert.True(t, ok)

		listing, err := reads.GetByID(ctx, olderID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		require.NotNil(t, listing.PrimaryImage)
		assert.Equal(t, "box.png", *listing.PrimaryImage)
	})
}
