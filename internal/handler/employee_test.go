package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employees/internal/model"
	"employees/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubEmployeeService returns canned results per operation, mirroring
// how the controller is tested against a mocked service.
type stubEmployeeService struct {
	createFn func(ctx context.Context, e *model.Employee) (*model.Employee, error)
	getFn    func(ctx context.Context, id string) (*model.Employee, error)
	listFn   func(ctx context.Context) ([]*model.Employee, error)
	updateFn func(ctx context.Context, e *model.Employee, id string) (*model.Employee, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubEmployeeService) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	return s.createFn(ctx, e)
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) List(ctx context.Context) ([]*model.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Update(ctx context.Context, e *model.Employee, id string) (*model.Employee, error) {
	return s.updateFn(ctx, e, id)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(svc service.IEmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEmployeeHandler(svc)

	employees := r.Group("/api/employees")
	employees.POST("", h.Create)
	employees.GET("", h.List)
	employees.GET("/:id", h.Get)
	employees.PUT("/:id", h.Update)
	employees.DELETE("/:id", h.Delete)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeDto(t *testing.T, w *httptest.ResponseRecorder) model.EmployeeDto {
	t.Helper()
	var dto model.EmployeeDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	return dto
}

func saraDto() model.EmployeeDto {
	return model.EmployeeDto{FirstName: "Sara", LastName: "Nouh", Email: "sm@gmail.com"}
}

func TestCreateReturns201WithAssignedID(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &stubEmployeeService{
		createFn: func(_ context.Context, e *model.Employee) (*model.Employee, error) {
			e.ID = id
			return e, nil
		},
	}

	w := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/employees", saraDto())

	require.Equal(t, http.StatusCreated, w.Code)
	dto := decodeDto(t, w)
	assert.Equal(t, id.Hex(), dto.ID)
	assert.Equal(t, "Sara", dto.FirstName)
	assert.Equal(t, "Nouh", dto.LastName)
	assert.Equal(t, "sm@gmail.com", dto.Email)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	svc := &stubEmployeeService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReturnsEmployee(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &stubEmployeeService{
		getFn: func(_ context.Context, gotID string) (*model.Employee, error) {
			assert.Equal(t, id.Hex(), gotID)
			return &model.Employee{ID: id, FirstName: "Sara", LastName: "Nouh", Email: "sm@gmail.com"}, nil
		},
	}

	w := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/employees/"+id.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeDto(t, w)
	assert.Equal(t, id.Hex(), dto.ID)
	assert.Equal(t, "Sara", dto.FirstName)
}

func TestGetMissingReturns404(t *testing.T) {
	svc := &stubEmployeeService{
		getFn: func(context.Context, string) (*model.Employee, error) { return nil, nil },
	}

	w := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/employees/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvalidIDReturns400(t *testing.T) {
	svc := &stubEmployeeService{}

	w := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/employees/not-an-id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReturnsAllEmployees(t *testing.T) {
	svc := &stubEmployeeService{
		listFn: func(context.Context) ([]*model.Employee, error) {
			return []*model.Employee{
				{ID: primitive.NewObjectID(), FirstName: "Sara", LastName: "Nouh", Email: "sm@gmail.com"},
				{ID: primitive.NewObjectID(), FirstName: "Ahmed", LastName: "Nouh", Email: "ahmed@gmail.com"},
			}, nil
		},
	}

	w := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/employees", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var dtos []model.EmployeeDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
	assert.Len(t, dtos, 2)
}

func TestListEmptyStoreReturnsEmptyArray(t *testing.T) {
	svc := &stubEmployeeService{
		listFn: func(context.Context) ([]*model.Employee, error) { return nil, nil },
	}

	w := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/employees", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdateReturnsChangedFields(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &stubEmployeeService{
		updateFn: func(_ context.Context, e *model.Employee, gotID string) (*model.Employee, error) {
			assert.Equal(t, id.Hex(), gotID)
			return &model.Employee{ID: id, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}, nil
		},
	}

	body := model.EmployeeDto{FirstName: "changed", LastName: "changed", Email: "changed"}
	w := doJSON(t, newTestRouter(svc), http.MethodPut, "/api/employees/"+id.Hex(), body)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeDto(t, w)
	assert.Equal(t, id.Hex(), dto.ID)
	assert.Equal(t, "changed", dto.FirstName)
	assert.Equal(t, "changed", dto.LastName)
	assert.Equal(t, "changed", dto.Email)
}

func TestUpdateMissingReturns404(t *testing.T) {
	svc := &stubEmployeeService{
		updateFn: func(context.Context, *model.Employee, string) (*model.Employee, error) { return nil, nil },
	}

	w := doJSON(t, newTestRouter(svc), http.MethodPut, "/api/employees/"+primitive.NewObjectID().Hex(), saraDto())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReturns204WithEmptyBody(t *testing.T) {
	svc := &stubEmployeeService{
		deleteFn: func(context.Context, string) error { return nil },
	}

	w := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/employees/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

// scenarioRepository is an in-memory store backing the end-to-end
// scenario below with a real EmployeeService.
type scenarioRepository struct {
	store map[string]model.Employee
}

func (f *scenarioRepository) Save(_ context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	f.store[e.ID.Hex()] = *e
	return e, nil
}

func (f *scenarioRepository) FindByID(_ context.Context, id string) (*model.Employee, error) {
	e, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	cp := e
	return &cp, nil
}

func (f *scenarioRepository) FindAll(_ context.Context) ([]*model.Employee, error) {
	out := make([]*model.Employee, 0, len(f.store))
	for _, e := range f.store {
		cp := e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *scenarioRepository) DeleteByID(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func TestEmployeeLifecycleScenario(t *testing.T) {
	repo := &scenarioRepository{store: make(map[string]model.Employee)}
	r := newTestRouter(service.NewEmployeeService(repo))

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/employees", saraDto())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeDto(t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Sara", created.FirstName)

	// Update
	body := model.EmployeeDto{FirstName: "changed", LastName: "changed", Email: "changed"}
	w = doJSON(t, r, http.MethodPut, "/api/employees/"+created.ID, body)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeDto(t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "changed", updated.FirstName)
	assert.Equal(t, "changed", updated.LastName)
	assert.Equal(t, "changed", updated.Email)

	// Delete
	w = doJSON(t, r, http.MethodDelete, "/api/employees/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Get after delete
	w = doJSON(t, r, http.MethodGet, "/api/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
