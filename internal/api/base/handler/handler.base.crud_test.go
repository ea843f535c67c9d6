package basehdl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

type widget struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

type fakeService struct {
	docs      map[primitive.ObjectID]widget
	lastQuery basemodels.FetchQuery
	createErr error
	panicOn   string
}

func newFakeService() *fakeService {
	return &fakeService{docs: map[primitive.ObjectID]widget{}}
}

func (f *fakeService) Fetch(_ context.Context, q basemodels.FetchQuery) (*basemodels.PaginateResult[bson.M], error) {
	f.lastQuery = q
	if f.panicOn == "fetch" {
		panic("boom")
	}
	items := []bson.M{}
	for _, d := range f.docs {
		items = append(items, bson.M{"_id": d.ID, "name": d.Name})
	}
	return basemodels.NewPaginateResult(items, int64(len(items)), q.Page, q.Limit), nil
}

func (f *fakeService) FindOneById(_ context.Context, id primitive.ObjectID) (widget, error) {
	d, ok := f.docs[id]
	if !ok {
		return widget{}, common.NotFound("widget")
	}
	return d, nil
}

func (f *fakeService) Create(_ context.Context, w widget) (widget, error) {
	if f.createErr != nil {
		return widget{}, f.createErr
	}
	if w.Name == "" {
		return widget{}, common.FieldError("name", "name is required")
	}
	w.ID = primitive.NewObjectID()
	f.docs[w.ID] = w
	return w, nil
}

func (f *fakeService) Update(_ context.Context, id primitive.ObjectID, patch []byte) (widget, error) {
	d, ok := f.docs[id]
	if !ok {
		return widget{}, common.NotFound("widget")
	}
	if err := json.Unmarshal(patch, &d); err != nil {
		return widget{}, common.FieldError("body", err.Error())
	}
	f.docs[id] = d
	return d, nil
}

func (f *fakeService) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return common.NotFound("widget")
	}
	delete(f.docs, id)
	return nil
}

func newTestApp(svc *fakeService) *fiber.App {
	h := NewBaseHandler[widget](svc)
	app := fiber.New()
	app.Get("/fetch", h.Fetch)
	app.Get("/fetchById/:id", h.FetchById)
	app.Post("/create", h.Create)
	app.Put("/update/:id", h.Update)
	app.Delete("/delete/:id", h.Delete)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestCreateReturns201(t *testing.T) {
	app := newTestApp(newFakeService())

	status, body := do(t, app, http.MethodPost, "/create", `{"name":"Milk"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Milk", body["name"])
}

func TestCreateValidationErrorIsFieldMap(t *testing.T) {
	app := newTestApp(newFakeService())

	status, body := do(t, app, http.MethodPost, "/create", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name is required", body["name"])

	status, body = do(t, app, http.MethodPost, "/create", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "body")
}

func TestCreateStoreFailureHidesCause(t *testing.T) {
	svc := newFakeService()
	svc.createErr = common.ConvertMongoError(errors.New("connection refused to 10.0.0.3"))
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/create", `{"name":"Milk"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, common.MsgInternalError, body["error"])
}

func TestFetchByIdNotFoundAndInvalid(t *testing.T) {
	app := newTestApp(newFakeService())

	status, body := do(t, app, http.MethodGet, "/fetchById/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "widget not found", body["message"])

	status, body = do(t, app, http.MethodGet, "/fetchById/123", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "id")
}

func TestFetchByIdTwiceIsStable(t *testing.T) {
	svc := newFakeService()
	app := newTestApp(svc)
	_, created := do(t, app, http.MethodPost, "/create", `{"name":"Tea"}`)
	id := created["_id"].(string)

	_, first := do(t, app, http.MethodGet, "/fetchById/"+id, "")
	_, second := do(t, app, http.MethodGet, "/fetchById/"+id, "")
	assert.Equal(t, first, second)
}

func TestUpdateAndDeleteMissingReturn404(t *testing.T) {
	svc := newFakeService()
	app := newTestApp(svc)
	missing := primitive.NewObjectID().Hex()

	status, _ := do(t, app, http.MethodPut, "/update/"+missing, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, svc.docs)

	status, body := do(t, app, http.MethodDelete, "/delete/"+missing, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "widget not found", body["message"])
}

func TestDeleteThenFetchByIdIsNotFound(t *testing.T) {
	app := newTestApp(newFakeService())
	_, created := do(t, app, http.MethodPost, "/create", `{"name":"Jam"}`)
	id := created["_id"].(string)

	status, body := do(t, app, http.MethodDelete, "/delete/"+id, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, body["id"])

	status, _ = do(t, app, http.MethodGet, "/fetchById/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFetchParsesQueryAndReturnsEnvelope(t *testing.T) {
	svc := newFakeService()
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodGet, "/fetch?search=mi&page=2&limit=5&bill_id=abc", "")
	assert.Equal(t, http.StatusOK, status)
	for _, key := range []string{"items", "total", "page", "limit", "totalPage"} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, "mi", svc.lastQuery.Search)
	assert.Equal(t, int64(2), svc.lastQuery.Page)
	assert.Equal(t, int64(5), svc.lastQuery.Limit)
	assert.Equal(t, "abc", svc.lastQuery.Params["bill_id"])

	_, _ = do(t, app, http.MethodGet, "/fetch?page=abc&limit=-1", "")
	assert.Equal(t, int64(1), svc.lastQuery.Page)
	assert.Equal(t, int64(10), svc.lastQuery.Limit)
}

func TestPanicBecomes500(t *testing.T) {
	svc := newFakeService()
	svc.panicOn = "fetch"
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodGet, "/fetch", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, common.MsgInternalError, body["error"])
}
