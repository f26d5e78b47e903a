package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func validMember(t *testing.T, email, nickname string) *entities.ValidatedMember {
	t.Helper()

	member, err := entities.NewValidatedMember(entities.NewMember(email, "secret", nickname))
	require.NoError(t, err)
	return member
}

// The repository-level duplicate translation is what guards the TOCTOU gap:
// these tests insert directly, bypassing the services' pre-checks, so the
// unique constraint itself must fire.
func TestCreateMemberConstraintTranslation(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, validMember(t, "alice@example.com", "alice"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, validMember(t, "alice@example.com", "other"))
	require.ErrorIs(t, err, apperrors.ErrEmailTaken)

	_, err = repo.Create(ctx, validMember(t, "other@example.com", "alice"))
	require.ErrorIs(t, err, apperrors.ErrNicknameTaken)
}

func TestFollowCreateConstraintTranslation(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follow, err := entities.NewValidatedFollow(entities.NewFollow(1, 2))
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, follow))
	require.ErrorIs(t, repo.Create(ctx, follow), apperrors.ErrAlreadyFollowing)
}

func TestMemberSoftDeleteAffectedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, validMember(t, "alice@example.com", "alice"))
	require.NoError(t, err)

	affected, err := repo.SoftDelete(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Already tombstoned: the conditional update must touch nothing.
	affected, err = repo.SoftDelete(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	// Tombstoned rows are invisible to every lookup.
	found, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFollowDeleteAffectedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follow, err := entities.NewValidatedFollow(entities.NewFollow(1, 2))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, follow))

	affected, err := repo.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestUniqueViolationSignals(t *testing.T) {
	// Postgres carries the constraint name in a structured field.
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_members_email"}
	constraint, ok := uniqueViolation(pgErr)
	require.True(t, ok)
	assert.Equal(t, "uq_members_email", constraint)

	// Other Postgres errors are not unique violations.
	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	// sqlite only exposes the violated columns in the message.
	constraint, ok = uniqueViolation(fmt.Errorf("UNIQUE constraint failed: members.nickname"))
	require.True(t, ok)
	assert.Equal(t, "members.nickname", constraint)

	_, ok = uniqueViolation(fmt.Errorf("connection refused"))
	assert.False(t, ok)
}
