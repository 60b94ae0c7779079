package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"social-network-service/internal/adapter/db/postgres"
	"social-network-service/internal/adapter/gin/handler"
	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/adapter/gin/router"
	"social-network-service/internal/usecase/comment"
	"social-network-service/internal/usecase/follow"
	"social-network-service/internal/usecase/like"
	"social-network-service/internal/usecase/post"
	"social-network-service/internal/usecase/user"
	"social-network-service/pkg/avatar"
	"social-network-service/pkg/security"
)

// APIIntegrationTestSuite wires the real stack end to end: in-memory
// sqlite through GORM, real usecases, real JWT tokens, avatar files on
// disk, and the full router. No mocks anywhere.
type APIIntegrationTestSuite struct {
	suite.Suite
	engine    *gin.Engine
	uploadDir string
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	t := suite.T()
	log := zaptest.NewLogger(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(postgres.AllSchemas()...))

	userRepo := postgres.NewUserRepoPG(db, log)
	postRepo := postgres.NewPostRepoPG(db, log)
	commentRepo := postgres.NewCommentRepoPG(db, log)
	followRepo := postgres.NewFollowRepoPG(db, log)
	likeRepo := postgres.NewLikeRepoPG(db, log)

	suite.uploadDir = t.TempDir()
	content, err := avatar.NewFSContentStore(suite.uploadDir, "/uploads")
	suite.Require().NoError(err)

	tokens := security.NewTokenService("integration-secret", time.Hour)
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	userUC := user.New(userRepo, followRepo, tokens, hasher, avatar.NewGenerator(), content, log)
	postUC := post.New(postRepo, log)
	commentUC := comment.New(commentRepo, postRepo, log)
	followUC := follow.New(followRepo, userRepo, log)
	likeUC := like.New(likeRepo, postRepo, log)

	suite.engine = router.SetupRouter(router.Handlers{
		Users:    handler.NewUserHandler(userUC, log),
		Posts:    handler.NewPostHandler(postUC, log),
		Comments: handler.NewCommentHandler(commentUC, log),
		Follows:  handler.NewFollowHandler(followUC, log),
		Likes:    handler.NewLikeHandler(likeUC, log),
	}, tokens, middleware.RateLimiterConfig{Enabled: false}, nil, suite.uploadDir, log)
}

// makeRequest drives the engine directly, no listener needed.
func (suite *APIIntegrationTestSuite) makeRequest(method, endpoint, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, endpoint, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.engine.ServeHTTP(w, req)
	return w
}

func (suite *APIIntegrationTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates a user through the API and returns its id and token.
func (suite *APIIntegrationTestSuite) registerAndLogin(email, password, name string) (string, string) {
	w := suite.makeRequest("POST", "/api/register", "", map[string]interface{}{
		"email":    email,
		"password": password,
		"name":     name,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	created := suite.decode(w)["user"].(map[string]interface{})
	id := created["id"].(string)

	w = suite.makeRequest("POST", "/api/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	token := suite.decode(w)["token"].(string)

	return id, token
}

// TestUserLifecycleAPI walks register, login, getById and update against
// the real stack and checks that the profile survives the round trip.
func (suite *APIIntegrationTestSuite) TestUserLifecycleAPI() {
	id, token := suite.registerAndLogin("alice@example.com", "secret123", "Alice")

	// A fresh user follows nobody and is followed by nobody.
	w := suite.makeRequest("GET", "/api/users/"+id, token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	fetched := suite.decode(w)
	suite.Equal("alice@example.com", fetched["email"])
	suite.Equal(false, fetched["isFollowing"])
	suite.NotContains(w.Body.String(), "secret123")

	// The generated avatar is on disk and served as static content.
	avatarURL := fetched["avatarUrl"].(string)
	suite.Require().NotEmpty(avatarURL)
	_, err := os.Stat(filepath.Join(suite.uploadDir, filepath.Base(avatarURL)))
	suite.Require().NoError(err)
	w = suite.makeRequest("GET", avatarURL, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	// Partial update changes only the supplied field.
	w = suite.makeRequest("PUT", "/api/users/"+id, token, map[string]interface{}{
		"bio": "gopher",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	updated := suite.decode(w)
	suite.Equal("gopher", updated["bio"])
	suite.Equal("alice@example.com", updated["email"])
	suite.Equal(avatarURL, updated["avatarUrl"])

	// Duplicate registration is rejected.
	w = suite.makeRequest("POST", "/api/register", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
		"name":     "Impostor",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("already_exists", suite.decode(w)["error"])

	// Authenticated routes reject requests without a token.
	w = suite.makeRequest("GET", "/api/current", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestPostInteractionAPI exercises posts, comments, likes and follows
// between two users through the full router.
func (suite *APIIntegrationTestSuite) TestPostInteractionAPI() {
	authorID, authorToken := suite.registerAndLogin("alice@example.com", "secret123", "Alice")
	_, readerToken := suite.registerAndLogin("bob@example.com", "secret123", "Bob")

	w := suite.makeRequest("POST", "/api/posts", authorToken, map[string]interface{}{
		"content": "hello world",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	postID := suite.decode(w)["post"].(map[string]interface{})["id"].(string)

	w = suite.makeRequest("POST", "/api/comments", readerToken, map[string]interface{}{
		"postId":  postID,
		"content": "nice one",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.makeRequest("POST", "/api/likes", readerToken, map[string]interface{}{
		"postId": postID,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// Liking twice is rejected.
	w = suite.makeRequest("POST", "/api/likes", readerToken, map[string]interface{}{
		"postId": postID,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.makeRequest("POST", "/api/follows", readerToken, map[string]interface{}{
		"followingId": authorID,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// The reader's feed carries the author and the like annotation.
	w = suite.makeRequest("GET", "/api/posts", readerToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	posts := suite.decode(w)["posts"].([]interface{})
	suite.Require().Len(posts, 1)
	feedPost := posts[0].(map[string]interface{})
	suite.Equal(postID, feedPost["id"])
	suite.Equal(float64(1), feedPost["likeCount"])
	suite.Equal(true, feedPost["likedByUser"])
	suite.Equal("Alice", feedPost["author"].(map[string]interface{})["name"])

	// The author now shows up as followed.
	w = suite.makeRequest("GET", fmt.Sprintf("/api/users/%s", authorID), readerToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(true, suite.decode(w)["isFollowing"])

	// Only the author can delete the post.
	w = suite.makeRequest("DELETE", "/api/posts/"+postID, readerToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.makeRequest("DELETE", "/api/posts/"+postID, authorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(postID, suite.decode(w)["id"])

	w = suite.makeRequest("GET", "/api/posts/"+postID, authorToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
