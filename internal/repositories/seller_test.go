package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev21/retro-market/internal/models"
)

var sellerRowColumns = []string{
	"seller_id", "username", "email", "password_hash", "password_salt",
	"rating", "total_sales", "member_since", "location", "bio",
	"shipping_info", "response_time", "contact_number",
}

func sellerRow(id uuid.UUID, username string, rating float64) []driver.Value {
	return []driver.Value{
		id.String(), username, username + "@example.com", "hash", "salt",
		rating, 0, time.Now(), "", "", "", "", "",
	}
}

func TestSellerReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerReadRepository(db)

	sellerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sellers WHERE seller_id = $1")).
			WithArgs(sellerID).
			WillReturnRows(sqlmock.NewRows(sellerRowColumns).AddRow(sellerRow(sellerID, "retro99", 5.0)...))

		seller, err := repo.GetByID(context.Background(), sellerID)
		assert.NoError(t, err)
		require.NotNil(t, seller)
		assert.Equal(t, "retro99", seller.Username)
	})

	t.Run("absent row is nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sellers WHERE seller_id = $1")).
			WithArgs(sellerID).
			WillReturnRows(sqlmock.NewRows(sellerRowColumns))

		seller, err := repo.GetByID(context.Background(), sellerID)
		assert.NoError(t, err)
		assert.Nil(t, seller)
	})

	t.Run("storage failure is an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sellers WHERE seller_id = $1")).
			WithArgs(sellerID).
			WillReturnError(errors.New("db down"))

		seller, err := repo.GetByID(context.Background(), sellerID)
		assert.Error(t, err)
		assert.Nil(t, seller)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerReadRepository(db)

	sellerID := uuid.New()

	t.Run("exact match", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sellers WHERE username = $1")).
			WithArgs("retro99").
			WillReturnRows(sqlmock.NewRows(sellerRowColumns).AddRow(sellerRow(sellerID, "retro99", 5.0)...))

		seller, err := repo.GetByUsername(context.Background(), "retro99")
		assert.NoError(t, err)
		require.NotNil(t, seller)
		assert.Equal(t, sellerID, seller.SellerID)
	})

	t.Run("unknown username is nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sellers WHERE username = $1")).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(sellerRowColumns))

		seller, err := repo.GetByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, seller)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerReadRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sellers ORDER BY rating DESC")).
		WillReturnRows(sqlmock.NewRows(sellerRowColumns).
			AddRow(sellerRow(uuid.New(), "topseller", 4.9)...).
			AddRow(sellerRow(uuid.New(), "newbie", 4.1)...))

	sellers, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, "topseller", sellers[0].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerWriteRepository(db)

	sellerID := uuid.New()
	seller := models.SellerDB{
		Username:     "retro99",
		Email:        "retro99@example.com",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		Rating:       5.0,
		MemberSince:  time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sellers")).
		WithArgs(
			sqlmock.AnyArg(), seller.Username, seller.Email, seller.PasswordHash, seller.PasswordSalt,
			seller.Rating, seller.TotalSales, seller.MemberSince, seller.Location, seller.Bio,
			seller.ShippingInfo, seller.ResponseTime, seller.ContactNumber,
		).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}).AddRow(sellerID.String()))

	got, err := repo.Save(context.Background(), seller)
	assert.NoError(t, err)
	assert.Equal(t, sellerID, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerWriteRepository_UpdateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerWriteRepository(db)

	sellerID := uuid.New()
	upd := models.SellerProfileUpdate{Location: "Osaka, Japan", Bio: "collector"}

	t.Run("changed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE sellers")).
			WithArgs(sellerID, upd.Location, upd.Bio, upd.ShippingInfo, upd.ResponseTime, upd.ContactNumber).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := repo.UpdateProfile(context.Background(), sellerID, upd)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("identical values report no change", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE sellers")).
			WithArgs(sellerID, upd.Location, upd.Bio, upd.ShippingInfo, upd.ResponseTime, upd.ContactNumber).
			WillReturnResult(sqlmock.NewResult(0, 0))

		changed, err := repo.UpdateProfile(context.Background(), sellerID, upd)
		assert.NoError(t, err)
		assert.False(t, changed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
