package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/middleware"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockStore implements Store[T] with overridable per-method funcs.
type mockStore[T any] struct {
	FindOneFunc    func(ctx context.Context, filter bson.M) (*T, error)
	FindFunc       func(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error)
	InsertOneFunc  func(ctx context.Context, doc T) (*mongo.InsertOneResult, error)
	UpdateOneFunc  func(ctx context.Context, filter, update bson.M, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	UpdateByIDFunc func(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error)
	DeleteByIDFunc func(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

func (m *mockStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockStore[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter, opts...)
	}
	return []T{}, nil
}

func (m *mockStore[T]) InsertOne(ctx context.Context, doc T) (*mongo.InsertOneResult, error) {
	if m.InsertOneFunc != nil {
		return m.InsertOneFunc(ctx, doc)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockStore[T]) UpdateOne(ctx context.Context, filter, update bson.M, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if m.UpdateOneFunc != nil {
		return m.UpdateOneFunc(ctx, filter, update, opts...)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockStore[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, update)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockStore[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, price float64) (string, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, price)
	}
	return "cs_test_secret", nil
}

type testMocks struct {
	users    *mockStore[models.User]
	classes  *mockStore[models.Class]
	cards    *mockStore[models.ClassCard]
	payments *mockStore[models.Payment]
	gateway  *mockGateway
}

func newTestHandler() (*Handler, *testMocks) {
	m := &testMocks{
		users:    &mockStore[models.User]{},
		classes:  &mockStore[models.Class]{},
		cards:    &mockStore[models.ClassCard]{},
		payments: &mockStore[models.Payment]{},
		gateway:  &mockGateway{},
	}
	h := NewHandler(m.users, m.classes, m.cards, m.payments, auth.New("test-secret"), m.gateway)
	return h, m
}

// asUser injects the email claim the way RequireAuth would.
func asUser(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.EmailKey, email)
	}
}

func perform(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
