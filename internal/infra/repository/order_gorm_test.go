package repository

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*OrderGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewOrderGormRepository(gdb), mock
}

func TestFindByIDNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDDeserializesItems(t *testing.T) {
	r, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "items", "total", "status", "cancelled"}).
		AddRow(3, `[{"name":"Tea","price":15,"qty":2}]`, 30, "Pending", false)
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(rows)

	o, err := r.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []model.OrderLine{{Name: "Tea", Price: 15, Quantity: 2}}, o.Items)
	assert.Equal(t, int64(30), o.Total)
	assert.Equal(t, model.OrderStatusPending, o.Status)
}

// Test: キャンセルはcheckとsetが1文。ガード不成立は0行更新でfalse。
func TestCancelWithinWindowGuard(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	//1回目：勝者
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := r.CancelWithinWindow(context.Background(), 5, now)
	require.NoError(t, err)
	assert.True(t, ok)

	//2回目：既にキャンセル済みなので0行
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = r.CancelWithinWindow(context.Background(), 5, now)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusIfMutableGuard(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := r.UpdateStatusIfMutable(context.Background(), 7, model.OrderStatusPreparing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetComplaintUnknownID(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "orders" SET "complaint"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := r.SetComplaint(context.Background(), 123, "cold food")
	require.NoError(t, err)
	assert.False(t, ok)
}
