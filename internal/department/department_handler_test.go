package department_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sampita/companytree/internal/department"
	departmenterrors "github.com/sampita/companytree/internal/department/errors"
	"github.com/sampita/companytree/internal/shared/apperror"
	"github.com/sampita/companytree/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn func(ctx context.Context, accountID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetFn    func(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListFn   func(ctx context.Context, companyID string, q tenant.ListQuery) ([]department.DepartmentResponse, error)
	UpdateFn func(ctx context.Context, accountID, id string, req department.UpdateDepartmentRequest) error
	DeleteFn func(ctx context.Context, accountID, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, accountID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, accountID, req)
}
func (f *fakeDepartmentService) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeDepartmentService) List(ctx context.Context, companyID string, q tenant.ListQuery) ([]department.DepartmentResponse, error) {
	return f.ListFn(ctx, companyID, q)
}
func (f *fakeDepartmentService) Update(ctx context.Context, accountID, id string, req department.UpdateDepartmentRequest) error {
	return f.UpdateFn(ctx, accountID, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, accountID, id string) error {
	return f.DeleteFn(ctx, accountID, id)
}

func newDepartmentRouter(svc department.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("account_id", uuid.New().String())
		c.Set("company_id", uuid.New().String())
		c.Next()
	})
	h := department.NewHandler(svc)
	r.POST("/departments", h.Create)
	r.GET("/departments", h.GetAll)
	r.GET("/departments/:id", h.GetById)
	r.PUT("/departments/:id", h.Update)
	r.DELETE("/departments/:id", h.Delete)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("admin create returns 201 with id, name and color", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, accountID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{
					ID:       uuid.New().String(),
					Name:     req.Name,
					ColorHex: req.ColorHex,
				}, nil
			},
		}
		r := newDepartmentRouter(svc)

		body := bytes.NewBufferString(`{"name":"Eng","colorHex":"#fff"}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env struct {
			Ok   bool                          `json:"ok"`
			Data department.DepartmentResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.NotEmpty(t, env.Data.ID)
		assert.Equal(t, "Eng", env.Data.Name)
		assert.Equal(t, "#fff", env.Data.ColorHex)
	})

	t.Run("non-admin create is a 403", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, accountID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, apperror.ErrForbidden
			},
		}
		r := newDepartmentRouter(svc)

		body := bytes.NewBufferString(`{"name":"Eng","colorHex":"#fff"}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var env struct {
			Ok bool `json:"ok"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
	})

	t.Run("payload without a name is a 400", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, accountID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				t.Fatal("service should not be called")
				return department.DepartmentResponse{}, nil
			},
		}
		r := newDepartmentRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{"colorHex":"#fff"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	t.Run("passes the path id through", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeDepartmentService{
			GetFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				assert.Equal(t, deptID, id)
				return department.DepartmentResponse{ID: deptID, Name: "Eng", ColorHex: "#fff"}, nil
			},
		}
		r := newDepartmentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/departments/"+deptID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}
		r := newDepartmentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/departments/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_UpdateDelete(t *testing.T) {
	t.Run("update returns an empty 204", func(t *testing.T) {
		svc := &fakeDepartmentService{
			UpdateFn: func(ctx context.Context, accountID, id string, req department.UpdateDepartmentRequest) error {
				return nil
			},
		}
		r := newDepartmentRouter(svc)

		body := bytes.NewBufferString(`{"name":"Sales","colorHex":"#000"}`)
		req := httptest.NewRequest(http.MethodPut, "/departments/"+uuid.New().String(), body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("delete missing department is a 404", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, accountID, id string) error {
				return departmenterrors.ErrDepartmentNotFound
			},
		}
		r := newDepartmentRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
