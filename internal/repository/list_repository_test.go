package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormListRepository_DeleteWithTasksTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "tasks" WHERE list_id = $1`)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "lists" WHERE "lists"."id" = $1`)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteWithTasks(7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormListRepository_DeleteWithTasksRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "tasks" WHERE list_id = $1`)).
		WithArgs(uint64(7)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	// The list row must not be touched when deleting the tasks fails
	require.Error(t, repo.DeleteWithTasks(7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormListRepository_FindByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewListRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "owner_id"}).
		AddRow(1, "Groceries", 42).
		AddRow(2, "Chores", 42)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "lists" WHERE owner_id = $1 ORDER BY lists.id ASC`)).
		WithArgs(uint64(42)).
		WillReturnRows(rows)

	lists, err := repo.FindByOwner(42)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, "Groceries", lists[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
		AddRow(1, "alice", "hashedpassword", true)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WithArgs("alice", 1).
		WillReturnRows(rows)

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.EqualValues(t, 1, user.ID)
	require.True(t, user.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}
