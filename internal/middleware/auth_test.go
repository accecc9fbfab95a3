package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUserFinder struct {
	FindOneFunc func(ctx context.Context, filter bson.M) (*models.User, error)
}

func (m *mockUserFinder) FindOne(ctx context.Context, filter bson.M) (*models.User, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, filter)
	}
	return nil, nil
}

func authRouter(tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(EmailKey)})
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := authRouter(auth.New("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	if !body.Error || body.Message == "" {
		t.Errorf("expected error envelope, got %s", w.Body.String())
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := authRouter(auth.New("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.New("test-secret")
	r := authRouter(tokens)

	token, err := tokens.Issue("student@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["email"] != "student@example.com" {
		t.Errorf("expected email claim in context, got %q", body["email"])
	}
}

func adminRouter(users UserFinder) *gin.Engine {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(EmailKey, "caller@example.com")
	}, RequireAdmin(users), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	users := &mockUserFinder{
		FindOneFunc: func(ctx context.Context, filter bson.M) (*models.User, error) {
			if filter["email"] != "caller@example.com" {
				t.Errorf("expected lookup by caller email, got %v", filter)
			}
			return &models.User{Email: "caller@example.com", Role: "admin"}, nil
		},
	}

	w := httptest.NewRecorder()
	adminRouter(users).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	cases := []struct {
		name string
		user *models.User
	}{
		{"student", &models.User{Email: "caller@example.com"}},
		{"instructor", &models.User{Email: "caller@example.com", Role: "instructors"}},
		{"unknown user", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUserFinder{
				FindOneFunc: func(ctx context.Context, filter bson.M) (*models.User, error) {
					return tc.user, nil
				},
			}

			w := httptest.NewRecorder()
			adminRouter(users).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			if w.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", w.Code)
			}
		})
	}
}

func TestRequireAdmin_LookupFailure(t *testing.T) {
	users := &mockUserFinder{
		FindOneFunc: func(ctx context.Context, filter bson.M) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}

	w := httptest.NewRecorder()
	adminRouter(users).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
