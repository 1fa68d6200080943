package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "contact-manager-api/internal/domain/user"
)

var userColumns = []string{
	"id", "name", "email", "phone", "position", "birth_date", "message",
	"created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func userRow(id uint64, email string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).AddRow(
		id, "Ana Silva", email, "+5511987654321", "Dev",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		"Hello, this is a test message",
		createdAt, createdAt,
	)
}

func TestRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs("Ana Silva", "ana@example.com", "+5511987654321", "Dev", birth, "Hello, this is a test message").
			WillReturnRows(userRow(1, "ana@example.com", now))

		r := NewRepository(mock)
		u, err := r.CreateUser(ctx, domain.User{
			Name:      "Ana Silva",
			Email:     "ana@example.com",
			Phone:     "+5511987654321",
			Position:  "Dev",
			BirthDate: birth,
			Message:   "Hello, this is a test message",
		})
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(1), u.ID)
		assert.Equal(t, u.CreatedAt, u.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrEmailAlreadyExists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		r := NewRepository(mock)
		u, err := r.CreateUser(ctx, domain.User{Email: "ana@example.com", BirthDate: birth})
		require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.Nil(t, u)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		mock := newMock(t)
		wantErr := errors.New("connection refused")
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(wantErr)

		r := NewRepository(mock)
		_, err := r.CreateUser(ctx, domain.User{Email: "ana@example.com", BirthDate: birth})
		require.ErrorIs(t, err, wantErr)
	})
}

func TestRepository_FetchUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(uint64(1)).
			WillReturnRows(userRow(1, "ana@example.com", time.Now()))

		r := NewRepository(mock)
		u, err := r.FetchUserByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "ana@example.com", u.Email)
	})

	t.Run("absent is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(uint64(42)).
			WillReturnError(pgx.ErrNoRows)

		r := NewRepository(mock)
		u, err := r.FetchUserByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestRepository_FetchUserByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("ana@example.com").
			WillReturnRows(userRow(1, "ana@example.com", time.Now()))

		r := NewRepository(mock)
		u, err := r.FetchUserByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
	})

	t.Run("absent is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		r := NewRepository(mock)
		u, err := r.FetchUserByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestRepository_FetchUsers(t *testing.T) {
	ctx := context.Background()
	t3 := time.Now()
	t2 := t3.Add(-time.Hour)
	t1 := t3.Add(-2 * time.Hour)

	t.Run("newest first", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows(userColumns)
		for i, ts := range []time.Time{t3, t2, t1} {
			rows.AddRow(
				uint64(3-i), "Ana Silva", "ana@example.com", "+5511987654321", "Dev",
				time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
				"Hello, this is a test message",
				ts, ts,
			)
		}
		mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).WillReturnRows(rows)

		r := NewRepository(mock)
		us, err := r.FetchUsers(ctx)
		require.NoError(t, err)
		require.Len(t, us, 3)
		assert.True(t, us[0].CreatedAt.After(us[1].CreatedAt))
		assert.True(t, us[1].CreatedAt.After(us[2].CreatedAt))
	})

	t.Run("empty table", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		r := NewRepository(mock)
		us, err := r.FetchUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, us)
	})
}

func TestRepository_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("partial patch passes nils for untouched columns", func(t *testing.T) {
		mock := newMock(t)
		name := "Ana S."
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(&name, (*string)(nil), (*string)(nil), (*string)(nil), (*time.Time)(nil), (*string)(nil), uint64(1)).
			WillReturnRows(userRow(1, "ana@example.com", time.Now()))

		r := NewRepository(mock)
		u, err := r.UpdateUser(ctx, 1, domain.Patch{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		r := NewRepository(mock)
		u, err := r.UpdateUser(ctx, 42, domain.Patch{})
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("unique violation maps to ErrEmailAlreadyExists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		email := "taken@example.com"
		r := NewRepository(mock)
		_, err := r.UpdateUser(ctx, 1, domain.Patch{Email: &email})
		require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestRepository_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted row is returned", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(DeleteUserByID)).
			WithArgs(uint64(1)).
			WillReturnRows(userRow(1, "ana@example.com", time.Now()))

		r := NewRepository(mock)
		u, err := r.DeleteUser(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(1), u.ID)
	})

	t.Run("no row matched is nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(DeleteUserByID)).
			WithArgs(uint64(42)).
			WillReturnError(pgx.ErrNoRows)

		r := NewRepository(mock)
		u, err := r.DeleteUser(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}
