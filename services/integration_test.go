package services_test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"video-sharing/database/db"
	"video-sharing/initiator"
	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
	"video-sharing/utils"
)

const testTokenKey = "0123456789abcdef0123456789abcdef"

// testPool is set by TestMain when TEST_INTEGRATION is on.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	if os.Getenv("TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("video_sharing_test"),
		postgres.WithUsername("video"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}
	if err := initiator.RunMigrations("file://../database/schema", "video_sharing_test", dsn); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	testPool, err = initiator.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to create pool: %v", err)
	}

	code := m.Run()

	testPool.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}
	os.Exit(code)
}

func setupStore(t *testing.T) db.Store {
	t.Helper()
	if testPool == nil {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}
	_, err := testPool.Exec(context.Background(), "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)
	return db.NewStore(testPool)
}

func createUser(t *testing.T, store db.Store, username string) db.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), db.CreateUserParams{
		ID:        uuid.New(),
		Username:  username,
		FirstName: "First" + username,
		LastName:  "Last",
		Email:     username + "@example.com",
		Password:  "hash",
	})
	require.NoError(t, err)
	return u
}

func createVideo(t *testing.T, store db.Store, owner uuid.UUID, title string, uploadedAt time.Time) db.Video {
	t.Helper()
	v, err := store.CreateVideo(context.Background(), db.CreateVideoParams{
		ID:            utils.NewVideoID(),
		Title:         title,
		Duration:      60,
		VideoPath:     "/videos/" + title,
		ThumbnailPath: "/thumbnails/" + title,
		UploadedAt:    uploadedAt,
		UploadedBy:    owner,
	})
	require.NoError(t, err)
	return v
}

func TestRegister(t *testing.T) {
	store := setupStore(t)
	u := services.NewUser(store, utils.NewTokenManager(testTokenKey, time.Hour), nil)
	ctx := context.Background()

	input := models.UserRegistrationRequest{
		FirstName: "Girma",
		LastName:  "Ngusu",
		Username:  "gimmy",
		Email:     "gimmy@gmail.com",
		Password:  "test123",
	}
	out, err := u.Register(ctx, input)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, out.ID)
	require.Equal(t, "gimmy", out.Username)
	require.Empty(t, out.Password)

	_, err = u.Register(ctx, input)
	var e models.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, http.StatusConflict, e.Code)

	login, err := u.Login(ctx, models.LoginRequest{Email: "gimmy@gmail.com", Password: "test123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, out.ID, login.User.ID)

	_, err = u.Login(ctx, models.LoginRequest{Email: "gimmy@gmail.com", Password: "wrong123"})
	require.ErrorAs(t, err, &e)
	require.Equal(t, http.StatusUnauthorized, e.Code)

	_, err = u.Login(ctx, models.LoginRequest{Email: "nobody@gmail.com", Password: "test123"})
	require.ErrorAs(t, err, &e)
	require.Equal(t, http.StatusUnauthorized, e.Code)
}

func TestVideoReactionAggregate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")
	liked := createVideo(t, store, owner.ID, "liked", time.Now())
	quiet := createVideo(t, store, owner.ID, "quiet", time.Now())

	reactions := services.NewReaction(store)
	for i, kind := range []string{"like", "like", "like", "dislike"} {
		fan := createUser(t, store, fmt.Sprintf("fan%d", i))
		msg, err := reactions.ReactVideo(ctx, liked.ID, fan.ID, kind)
		require.NoError(t, err)
		require.Equal(t, kind+"d", msg.Message)
	}

	videos := services.NewVideo(discard, store, nil, nil, nil, t.TempDir())
	detail, err := videos.Get(ctx, liked.ID, nil)
	require.NoError(t, err)
	require.Equal(t, models.ReactionCount{Like: 3, Dislike: 1}, detail.ReactionCount)
	require.Equal(t, "owner", detail.UploadedBy.Username)
	require.Equal(t, int64(1), detail.Views)

	detail, err = videos.Get(ctx, quiet.ID, nil)
	require.NoError(t, err)
	require.Equal(t, models.ReactionCount{}, detail.ReactionCount)
}

func TestReactionReplacesPrevious(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")
	v := createVideo(t, store, owner.ID, "v", time.Now())

	reactions := services.NewReaction(store)
	_, err := reactions.ReactVideo(ctx, v.ID, owner.ID, "like")
	require.NoError(t, err)
	_, err = reactions.ReactVideo(ctx, v.ID, owner.ID, "dislike")
	require.NoError(t, err)

	count, err := store.GetVideoReactionCount(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count.Likes)
	require.Equal(t, int64(1), count.Dislikes)

	msg, err := reactions.UnreactVideo(ctx, v.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "deleted reaction", msg.Message)
}

func TestSearchVideos(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")
	base := time.Now().Add(-time.Hour)
	createVideo(t, store, owner.ID, "Concatenate", base)
	createVideo(t, store, owner.ID, "CATALOG", base.Add(time.Minute))
	createVideo(t, store, owner.ID, "dog", base.Add(2*time.Minute))

	svc := services.NewSearch(store, nil)
	got, err := svc.Videos(ctx, models.SearchVideosQuery{Q: strPtr("cat")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "CATALOG", got[0].Title)
	require.Equal(t, "Concatenate", got[1].Title)

	got, err = svc.Videos(ctx, models.SearchVideosQuery{Q: strPtr("cat"), Limit: strPtr("1"), Offset: strPtr("1")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Concatenate", got[0].Title)

	got, err = svc.Videos(ctx, models.SearchVideosQuery{Q: strPtr("cat"), Category: strPtr("music")})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchUsers(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	createUser(t, store, "bob")
	alice := createUser(t, store, "alice")
	fan := createUser(t, store, "carol")
	require.NoError(t, store.Subscribe(ctx, db.SubscribeParams{SubscriberID: fan.ID, ChannelID: alice.ID}))

	svc := services.NewSearch(store, nil)
	got, err := svc.Users(ctx, models.SearchUsersQuery{Q: strPtr("FIRSTALI")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "alice", got[0].Username)
	require.Equal(t, int64(1), got[0].Subscribers)
}

func TestCommentGuardUsesCompoundKey(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")
	first := createVideo(t, store, owner.ID, "first", time.Now())
	second := createVideo(t, store, owner.ID, "second", time.Now())

	comments := services.NewComment(store)
	c, err := comments.Create(ctx, first.ID, owner.ID, "nice")
	require.NoError(t, err)
	require.Equal(t, "owner", c.Author.Username)

	finder := services.NewFinder(store)
	n, err := finder.Count(ctx, models.EntityComment, models.LookupKey{ID: fmt.Sprint(c.ID), ParentID: first.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = finder.Count(ctx, models.EntityComment, models.LookupKey{ID: fmt.Sprint(c.ID), ParentID: second.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	n, err = finder.Count(ctx, models.EntityVideo, models.LookupKey{ID: "missing0000"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestSubscriptionFeedAndHistory(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	viewer := createUser(t, store, "viewer")
	followed := createUser(t, store, "followed")
	other := createUser(t, store, "other")
	old := createVideo(t, store, followed.ID, "old", time.Now().Add(-time.Hour))
	fresh := createVideo(t, store, followed.ID, "fresh", time.Now())
	createVideo(t, store, other.ID, "unrelated", time.Now())

	subs := services.NewSubscription(store, nil)
	_, err := subs.Subscribe(ctx, viewer.ID, "followed")
	require.NoError(t, err)

	_, err = subs.Subscribe(ctx, viewer.ID, "viewer")
	var e models.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, http.StatusBadRequest, e.Code)

	feed, err := subs.Feed(ctx, viewer.ID, search.Page{Limit: 30})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, fresh.ID, feed[0].ID)
	require.Equal(t, old.ID, feed[1].ID)

	videos := services.NewVideo(discard, store, nil, nil, nil, t.TempDir())
	_, err = videos.Get(ctx, old.ID, &viewer.ID)
	require.NoError(t, err)

	histories := services.NewHistory(store, nil)
	watched, err := histories.List(ctx, viewer.ID, search.Page{Limit: 30})
	require.NoError(t, err)
	require.Len(t, watched, 1)
	require.Equal(t, old.ID, watched[0].ID)

	msg, err := histories.Clear(ctx, viewer.ID)
	require.NoError(t, err)
	require.Equal(t, "deleted histories", msg.Message)
}
