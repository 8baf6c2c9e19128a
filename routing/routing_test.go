package routing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"video-sharing/handlers"
	"video-sharing/models"
	"video-sharing/routing"
	"video-sharing/services"
	"video-sharing/utils"
)

const tokenKey = "abcdefghijklmnopqrstuvwxyz012345"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeFinder struct {
	counts map[string]int64
	calls  int
}

func findKey(kind models.EntityKind, key models.LookupKey) string {
	return fmt.Sprintf("%s|%s|%s", kind, key.ID, key.ParentID)
}

func (f *fakeFinder) Count(_ context.Context, kind models.EntityKind, key models.LookupKey) (int64, error) {
	f.calls++
	return f.counts[findKey(kind, key)], nil
}

type fakeEnforcer struct {
	deny   bool
	admins map[string]bool
}

func (f *fakeEnforcer) Enforce(...interface{}) (bool, error) { return !f.deny, nil }

func (f *fakeEnforcer) HasRoleForUser(name string, role string, _ ...string) (bool, error) {
	return role == services.RoleAdmin && f.admins[name], nil
}

type fakeUsers struct {
	services.UserService
}

func (fakeUsers) GetUser(_ context.Context, uid uuid.UUID) (models.User, error) {
	return models.User{ID: uid, Username: "me"}, nil
}

type fakeVideos struct {
	services.VideoService
	videos    map[string]models.Video
	uploadErr error

	uploaded  []models.UploadVideoInput
	sawFile   bool
	extraFile string
	viewers   []*uuid.UUID
	updates   []models.UpdateVideoInput
	getCalls  int
	tempDir   string
}

func (f *fakeVideos) Upload(_ context.Context, uid uuid.UUID, in models.UploadVideoInput, tmp services.TempRegistry) (models.Video, error) {
	f.uploaded = append(f.uploaded, in)
	_, err := os.Stat(in.FilePath)
	f.sawFile = err == nil

	f.extraFile = filepath.Join(f.tempDir, "frame.png")
	tmp.AddTempFile(f.extraFile)
	if err := os.WriteFile(f.extraFile, []byte("png"), 0o600); err != nil {
		return models.Video{}, err
	}
	if f.uploadErr != nil {
		return models.Video{}, f.uploadErr
	}
	return models.Video{ID: "abcdefghijk", Title: in.Title, UploadedBy: models.Uploader{ID: uid}}, nil
}

func (f *fakeVideos) Get(_ context.Context, id string, viewer *uuid.UUID) (models.VideoDetail, error) {
	f.getCalls++
	f.viewers = append(f.viewers, viewer)
	return models.VideoDetail{Video: f.videos[id]}, nil
}

func (f *fakeVideos) Load(_ context.Context, id string) (models.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return models.Video{}, models.NotFound(models.EntityVideo)
	}
	return v, nil
}

func (f *fakeVideos) Update(_ context.Context, current models.Video, in models.UpdateVideoInput) (models.Video, error) {
	f.updates = append(f.updates, in)
	if in.Title != nil {
		current.Title = *in.Title
	}
	return current, nil
}

type fakeComments struct {
	services.CommentService
}

type reactCall struct {
	commentID int64
	videoID   string
	reaction  string
}

type fakeReactions struct {
	services.ReactionService
	calls []reactCall
}

func (f *fakeReactions) ReactVideo(_ context.Context, videoID string, _ uuid.UUID, reaction string) (models.Message, error) {
	f.calls = append(f.calls, reactCall{videoID: videoID, reaction: reaction})
	return models.Message{Message: reaction + "d"}, nil
}

func (f *fakeReactions) ReactComment(_ context.Context, id int64, _ uuid.UUID, reaction string) (models.Message, error) {
	f.calls = append(f.calls, reactCall{commentID: id, reaction: reaction})
	return models.Message{Message: reaction + "d"}, nil
}

type fakeSearch struct {
	services.SearchService
	err     error
	queries []models.SearchVideosQuery
}

func (f *fakeSearch) Videos(_ context.Context, q models.SearchVideosQuery) ([]models.Video, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return []models.Video{{ID: "abcdefghijk", Title: "cat"}}, nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testServer struct {
	engine    *gin.Engine
	tm        utils.TokenManager
	finder    *fakeFinder
	enforcer  *fakeEnforcer
	videos    *fakeVideos
	reactions *fakeReactions
	search    *fakeSearch
	tempDir   string
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		tm:        utils.NewTokenManager(tokenKey, time.Hour),
		finder:    &fakeFinder{counts: map[string]int64{}},
		enforcer:  &fakeEnforcer{admins: map[string]bool{}},
		reactions: &fakeReactions{},
		search:    &fakeSearch{},
		tempDir:   t.TempDir(),
	}
	s.videos = &fakeVideos{videos: map[string]models.Video{}, tempDir: s.tempDir}

	mw := handlers.NewMiddleware(s.tm, s.enforcer, discard, 0)
	s.engine = gin.New()
	s.engine.Use(mw.RequestContext(), mw.ErrorMiddleware())
	routing.RegisterRoutes(s.engine, routing.Handlers{
		UserHandler:         handlers.NewUser(fakeUsers{}),
		VideoHandler:        handlers.NewVideo(s.videos, s.reactions, s.tempDir),
		CommentHandler:      handlers.NewComment(fakeComments{}, s.reactions),
		SubscriptionHandler: handlers.NewSubscription(nil),
		HistoryHandler:      handlers.NewHistory(nil),
		CategoryHandler:     handlers.NewCategory(nil),
		SearchHandler:       handlers.NewSearch(s.search),
		Health:              handlers.Health(pinger{}),
		Guards:              handlers.NewGuards(s.finder, s.videos, fakeComments{}, s.enforcer),
		Middlewares:         mw,
		MaxUploadBytes:      32 << 20,
	})
	return s
}

func (s *testServer) token(t *testing.T, uid uuid.UUID) string {
	t.Helper()
	token, err := s.tm.CreateToken(utils.NewPayload(uid))
	require.NoError(t, err)
	return token
}

func (s *testServer) do(req *http.Request, token string) (int, map[string]interface{}) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec.Code, body
}

type filePart struct {
	field, name, contentType, content string
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSearchVideosRules(t *testing.T) {
	testCases := []struct {
		name    string
		query   string
		status  int
		message string
	}{
		{name: "missing q", query: "limit=10", status: http.StatusBadRequest, message: "missing parameter"},
		{name: "empty q", query: "q=", status: http.StatusBadRequest, message: "missing parameter"},
		{name: "limit above max", query: "q=cat&limit=101", status: http.StatusBadRequest, message: "invalid parameter"},
		{name: "negative offset", query: "q=cat&offset=-1", status: http.StatusBadRequest, message: "invalid parameter"},
		{name: "bad date", query: "q=cat&max_upload_date=yesterday", status: http.StatusBadRequest, message: "invalid parameter"},
		{name: "bad duration", query: "q=cat&min_duration=long", status: http.StatusBadRequest, message: "invalid parameter"},
		{name: "first failure wins", query: "limit=abc", status: http.StatusBadRequest, message: "missing parameter"},
		{name: "valid", query: "q=cat&limit=100&offset=0&max_upload_date=2021-03-04&min_duration=60", status: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(t)
			status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/search/videos?"+tc.query, nil), "")

			require.Equal(t, tc.status, status)
			if tc.status != http.StatusOK {
				require.Equal(t, tc.message, body["message"])
				require.Empty(t, s.search.queries)
				return
			}
			require.Len(t, s.search.queries, 1)
			require.Equal(t, "cat", *s.search.queries[0].Q)
			require.Len(t, body["data"], 1)
		})
	}
}

func TestInternalErrorIsHidden(t *testing.T) {
	s := newServer(t)
	s.search.err = errors.New("connection reset by peer")

	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/search/videos?q=cat", nil), "")
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, map[string]interface{}{"message": "internal server error"}, body)
}

func TestTaggedErrorKeepsStatus(t *testing.T) {
	s := newServer(t)
	s.search.err = models.NewError(models.KindConflict, "resource already exists", nil)

	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/search/videos?q=cat", nil), "")
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "resource already exists", body["message"])
}

func TestAuthentication(t *testing.T) {
	s := newServer(t)

	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/me", nil), "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "access denied", body["message"])

	status, _ = s.do(httptest.NewRequest(http.MethodGet, "/v1/me", nil), "not-a-token")
	require.Equal(t, http.StatusUnauthorized, status)

	uid := uuid.New()
	status, body = s.do(httptest.NewRequest(http.MethodGet, "/v1/me", nil), s.token(t, uid))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, uid.String(), body["data"].(map[string]interface{})["id"])
}

func TestAuthorizeDenied(t *testing.T) {
	s := newServer(t)
	s.enforcer.deny = true

	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/me", nil), s.token(t, uuid.New()))
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "forbidden", body["message"])
}

func TestGetVideoGuard(t *testing.T) {
	s := newServer(t)

	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/videos/abcdefghijk", nil), "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "video not found", body["message"])
	require.Zero(t, s.videos.getCalls)
}

func TestGetVideoViewer(t *testing.T) {
	s := newServer(t)
	s.finder.counts[findKey(models.EntityVideo, models.LookupKey{ID: "abcdefghijk"})] = 1
	s.videos.videos["abcdefghijk"] = models.Video{ID: "abcdefghijk"}
	uid := uuid.New()

	status, _ := s.do(httptest.NewRequest(http.MethodGet, "/v1/videos/abcdefghijk", nil), "")
	require.Equal(t, http.StatusOK, status)
	status, _ = s.do(httptest.NewRequest(http.MethodGet, "/v1/videos/abcdefghijk", nil), "garbage")
	require.Equal(t, http.StatusOK, status)
	status, _ = s.do(httptest.NewRequest(http.MethodGet, "/v1/videos/abcdefghijk", nil), s.token(t, uid))
	require.Equal(t, http.StatusOK, status)

	require.Len(t, s.videos.viewers, 3)
	require.Nil(t, s.videos.viewers[0])
	require.Nil(t, s.videos.viewers[1])
	require.Equal(t, uid, *s.videos.viewers[2])
}

func TestUploadRemovesTempFiles(t *testing.T) {
	video := &filePart{field: "video", name: "Clip.MP4", contentType: "video/mp4", content: "not really a video"}
	fields := map[string]string{"title": "cats", "categories": "music,comedy", "description": "d"}

	t.Run("success", func(t *testing.T) {
		s := newServer(t)
		req := multipartRequest(t, http.MethodPost, "/v1/videos", fields, video)
		status, body := s.do(req, s.token(t, uuid.New()))

		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "cats", body["data"].(map[string]interface{})["title"])
		require.Len(t, s.videos.uploaded, 1)
		in := s.videos.uploaded[0]
		require.True(t, s.videos.sawFile)
		require.Equal(t, []string{"music", "comedy"}, in.Categories)
		require.Equal(t, "d", in.Description)
		require.Equal(t, ".mp4", filepath.Ext(in.FilePath))

		require.NoFileExists(t, in.FilePath)
		require.NoFileExists(t, s.videos.extraFile)
	})

	t.Run("failure", func(t *testing.T) {
		s := newServer(t)
		s.videos.uploadErr = models.BadRequest("invalid video")
		req := multipartRequest(t, http.MethodPost, "/v1/videos", fields, video)
		status, body := s.do(req, s.token(t, uuid.New()))

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid video", body["message"])
		require.Len(t, s.videos.uploaded, 1)
		require.NoFileExists(t, s.videos.uploaded[0].FilePath)
		require.NoFileExists(t, s.videos.extraFile)
	})
}

func TestUploadRules(t *testing.T) {
	testCases := []struct {
		name    string
		fields  map[string]string
		file    *filePart
		message string
	}{
		{
			name:    "missing title",
			fields:  map[string]string{"categories": "music"},
			file:    &filePart{field: "video", name: "a.mp4", contentType: "video/mp4", content: "x"},
			message: "missing parameter",
		},
		{
			name:    "missing file",
			fields:  map[string]string{"title": "t", "categories": "music"},
			message: "missing parameter",
		},
		{
			name:    "not a video",
			fields:  map[string]string{"title": "t", "categories": "music"},
			file:    &filePart{field: "video", name: "a.txt", contentType: "text/plain", content: "x"},
			message: "invalid video",
		},
		{
			name:    "bad categories",
			fields:  map[string]string{"title": "t", "categories": "music,1"},
			file:    &filePart{field: "video", name: "a.mp4", contentType: "video/mp4", content: "x"},
			message: "invalid categories",
		},
		{
			name:    "missing categories",
			fields:  map[string]string{"title": "t"},
			file:    &filePart{field: "video", name: "a.mp4", contentType: "video/mp4", content: "x"},
			message: "invalid categories",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(t)
			req := multipartRequest(t, http.MethodPost, "/v1/videos", tc.fields, tc.file)
			status, body := s.do(req, s.token(t, uuid.New()))

			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, tc.message, body["message"])
			require.Empty(t, s.videos.uploaded)

			entries, err := os.ReadDir(s.tempDir)
			require.NoError(t, err)
			require.Empty(t, entries)
		})
	}
}

func TestUpdateVideoOwnership(t *testing.T) {
	owner, other, admin := uuid.New(), uuid.New(), uuid.New()
	setup := func(t *testing.T) *testServer {
		s := newServer(t)
		s.finder.counts[findKey(models.EntityVideo, models.LookupKey{ID: "abcdefghijk"})] = 1
		s.videos.videos["abcdefghijk"] = models.Video{
			ID:         "abcdefghijk",
			Title:      "old",
			UploadedBy: models.Uploader{ID: owner},
		}
		s.enforcer.admins[admin.String()] = true
		return s
	}
	fields := map[string]string{"title": "new"}

	t.Run("other user", func(t *testing.T) {
		s := setup(t)
		req := multipartRequest(t, http.MethodPatch, "/v1/videos/abcdefghijk", fields, nil)
		status, body := s.do(req, s.token(t, other))
		require.Equal(t, http.StatusForbidden, status)
		require.Equal(t, "forbidden", body["message"])
		require.Empty(t, s.videos.updates)
	})

	t.Run("admin", func(t *testing.T) {
		s := setup(t)
		req := multipartRequest(t, http.MethodPatch, "/v1/videos/abcdefghijk", fields, nil)
		status, body := s.do(req, s.token(t, admin))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "new", body["data"].(map[string]interface{})["title"])
	})

	t.Run("owner without fields", func(t *testing.T) {
		s := setup(t)
		req := multipartRequest(t, http.MethodPatch, "/v1/videos/abcdefghijk", map[string]string{"title": ""}, nil)
		status, body := s.do(req, s.token(t, owner))
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "missing parameter", body["message"])
		require.Empty(t, s.videos.updates)
	})

	t.Run("owner with bad thumbnail", func(t *testing.T) {
		s := setup(t)
		thumb := &filePart{field: "thumbnail", name: "t.mp4", contentType: "video/mp4", content: "x"}
		req := multipartRequest(t, http.MethodPatch, "/v1/videos/abcdefghijk", nil, thumb)
		status, body := s.do(req, s.token(t, owner))
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid thumbnail", body["message"])
	})

	t.Run("owner with thumbnail", func(t *testing.T) {
		s := setup(t)
		thumb := &filePart{field: "thumbnail", name: "t.PNG", contentType: "image/png", content: "x"}
		req := multipartRequest(t, http.MethodPatch, "/v1/videos/abcdefghijk", map[string]string{"categories": "news"}, thumb)
		status, _ := s.do(req, s.token(t, owner))
		require.Equal(t, http.StatusOK, status)

		require.Len(t, s.videos.updates, 1)
		in := s.videos.updates[0]
		require.Nil(t, in.Title)
		require.Equal(t, []string{"news"}, in.Categories)
		require.Equal(t, "t.PNG", in.ThumbnailFilename)
		require.NoFileExists(t, in.ThumbnailPath)
	})
}

func TestVideoReactionRules(t *testing.T) {
	s := newServer(t)
	s.finder.counts[findKey(models.EntityVideo, models.LookupKey{ID: "abcdefghijk"})] = 1
	token := s.token(t, uuid.New())

	status, body := s.do(jsonRequest(http.MethodPost, "/v1/videos/abcdefghijk/reaction", ""), token)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "missing parameter", body["message"])

	status, body = s.do(jsonRequest(http.MethodPost, "/v1/videos/abcdefghijk/reaction", `{"reaction":"love"}`), token)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid parameter", body["message"])

	status, body = s.do(jsonRequest(http.MethodPost, "/v1/videos/abcdefghijk/reaction", `{"reaction":"like"}`), token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "liked", body["data"].(map[string]interface{})["message"])
	require.Equal(t, []reactCall{{videoID: "abcdefghijk", reaction: "like"}}, s.reactions.calls)
}

func TestCommentGuardUsesVideo(t *testing.T) {
	s := newServer(t)
	s.finder.counts[findKey(models.EntityComment, models.LookupKey{ID: "5", ParentID: "abcdefghijk"})] = 1
	token := s.token(t, uuid.New())
	body := `{"reaction":"dislike"}`

	status, resp := s.do(jsonRequest(http.MethodPost, "/v1/videos/abcdefghijk/comments/abc/reaction", body), token)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid parameter", resp["message"])
	require.Zero(t, s.finder.calls)

	status, resp = s.do(jsonRequest(http.MethodPost, "/v1/videos/zyxwvutsrqp/comments/5/reaction", body), token)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "comment not found", resp["message"])
	require.Empty(t, s.reactions.calls)

	status, _ = s.do(jsonRequest(http.MethodPost, "/v1/videos/abcdefghijk/comments/5/reaction", body), token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []reactCall{{commentID: 5, reaction: "dislike"}}, s.reactions.calls)
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	status, body := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil), "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])

	h := handlers.Health(pinger{err: errors.New("down")})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	h(c)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPageRules(t *testing.T) {
	s := newServer(t)
	status, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/videos?limit=abc", nil), s.token(t, uuid.New()))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid parameter", body["message"])
}
