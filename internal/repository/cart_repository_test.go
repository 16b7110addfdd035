package repository_test

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCartRepo(t *testing.T) (*repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	database := &config.Database{DB: sqlx.NewDb(db, "sqlmock")}
	return repository.NewCartRepository(database), mock
}

// 1. Вставка новой позиции возвращает её же
func TestCreateCartItem_NewRow(t *testing.T) {
	repo, mock := newMockCartRepo(t)
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{"uuid", "quantity", "created_at"}).
		AddRow("c1", 2, createdAt)
	mock.ExpectQuery(`INSERT INTO cart_items`).
		WithArgs("c1", "u1", "b1", 2).
		WillReturnRows(rows)

	item := &model.CartItem{UUID: "c1", UserUUID: "u1", BookUUID: "b1", Quantity: 2}
	err := repo.Create(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, "c1", item.UUID)
	assert.Equal(t, 2, item.Quantity)
}

// 2. Гонка двух одновременных добавлений одной книги: вторая вставка
// попадает в ON CONFLICT, количество суммируется в уже существующей строке
func TestCreateCartItem_ConcurrentDuplicateAccumulates(t *testing.T) {
	repo, mock := newMockCartRepo(t)
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{"uuid", "quantity", "created_at"}).
		AddRow("c1", 5, createdAt)
	mock.ExpectQuery(`INSERT INTO cart_items`).
		WithArgs("c2", "u1", "b1", 2).
		WillReturnRows(rows)

	item := &model.CartItem{UUID: "c2", UserUUID: "u1", BookUUID: "b1", Quantity: 2}
	err := repo.Create(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, "c1", item.UUID, "остаётся UUID существующей строки")
	assert.Equal(t, 5, item.Quantity, "количество суммируется, строка не дублируется")
	assert.NoError(t, mock.ExpectationsWereMet())
}
