package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"social-service/internal/application/command"
	"social-service/internal/application/interfaces"
	"social-service/internal/application/services"
	"social-service/internal/infrastructure/db/postgres"
	"social-service/internal/infrastructure/logger"
)

type testEnv struct {
	db      *gorm.DB
	members interfaces.MemberService
	posts   interfaces.PostService
	follows interfaces.FollowService
	feed    interfaces.FeedService
}

// newTestEnv wires the full service graph over an in-memory sqlite database.
// A single connection serializes concurrent goroutines the way row locks
// would on Postgres, while still exercising the real unique constraints.
func newTestEnv(t *testing.T) *testEnv {
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

	require.NoError(t, postgres.Migrate(db))

	log := logger.NewNop()
	memberRepo := postgres.NewMemberRepository(db)
	postRepo := postgres.NewPostRepository(db)
	followRepo := postgres.NewFollowRepository(db)

	members := services.NewMemberService(memberRepo, log)
	posts := services.NewPostService(postRepo, members, log)
	follows := services.NewFollowService(followRepo, members, log)
	feed := services.NewFeedService(follows, posts, log)

	return &testEnv{
		db:      db,
		members: members,
		posts:   posts,
		follows: follows,
		feed:    feed,
	}
}

func (env *testEnv) createMember(t *testing.T, email, nickname string) int64 {
	t.Helper()

	result, err := env.members.CreateMember(context.Background(), &command.CreateMemberCommand{
		Email:    email,
		Password: "secret",
		Nickname: nickname,
	})
	require.NoError(t, err)
	return result.Result.Id
}

func (env *testEnv) createPost(t *testing.T, memberId int64, content string) int64 {
	t.Helper()

	result, err := env.posts.CreatePost(context.Background(), &command.CreatePostCommand{
		MemberId: memberId,
		Content:  content,
	})
	require.NoError(t, err)
	return result.Result.Id
}

func strPtr(s string) *string {
	return &s
}
