package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sampita/companytree/internal/employee"
	employeeerrors "github.com/sampita/companytree/internal/employee/errors"
	"github.com/sampita/companytree/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn    func(ctx context.Context, accountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetFn       func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	ListFn      func(ctx context.Context, companyID string, q tenant.ListQuery) ([]employee.EmployeeResponse, error)
	DirectoryFn func(ctx context.Context, companyID string) ([]employee.DirectoryEntry, error)
	UpdateFn    func(ctx context.Context, accountID, id string, req employee.UpdateEmployeeRequest) error
	DeleteFn    func(ctx context.Context, accountID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, accountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, accountID, req)
}
func (f *fakeEmployeeService) Get(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.GetFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) List(ctx context.Context, companyID string, q tenant.ListQuery) ([]employee.EmployeeResponse, error) {
	return f.ListFn(ctx, companyID, q)
}
func (f *fakeEmployeeService) Directory(ctx context.Context, companyID string) ([]employee.DirectoryEntry, error) {
	return f.DirectoryFn(ctx, companyID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, accountID, id string, req employee.UpdateEmployeeRequest) error {
	return f.UpdateFn(ctx, accountID, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, accountID, id string) error {
	return f.DeleteFn(ctx, accountID, id)
}

func newEmployeeRouter(svc employee.Service, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("account_id", uuid.New().String())
		c.Set("company_id", companyID)
		c.Next()
	})
	h := employee.NewHandler(svc)
	grp := r.Group("/employees")
	grp.GET("", h.GetAll)
	grp.GET("/directory", h.Directory)
	grp.POST("", h.Create)
	grp.GET("/:id", h.GetById)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, accountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "jdoe", req.Username)
				assert.Equal(t, []string{"chess"}, req.Hobbies)
				return employee.EmployeeResponse{
					ID:       uuid.New().String(),
					Position: req.Position,
					Hobbies:  req.Hobbies,
				}, nil
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		body := bytes.NewBufferString(`{
			"username": "jdoe",
			"email": "jdoe@example.com",
			"password": "s3cret",
			"first_name": "Jane",
			"last_name": "Doe",
			"position": "Engineer",
			"hobbies": ["chess"]
		}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env struct {
			Ok   bool                      `json:"ok"`
			Data employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "Engineer", env.Data.Position)
	})

	t.Run("short password is rejected with 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, accountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service should not be called")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		body := bytes.NewBufferString(`{
			"username": "jdoe",
			"email": "jdoe@example.com",
			"password": "abc",
			"first_name": "Jane",
			"last_name": "Doe"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username surfaces as 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, accountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrUsernameAlreadyTaken
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		body := bytes.NewBufferString(`{
			"username": "jdoe",
			"email": "jdoe@example.com",
			"password": "s3cret",
			"first_name": "Jane",
			"last_name": "Doe"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("limit and search pass through, noise params are dropped", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, cid string, q tenant.ListQuery) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				if assert.NotNil(t, q.Limit) {
					assert.Equal(t, 10, *q.Limit)
				}
				assert.Equal(t, "engineer", q.Search)
				return []employee.EmployeeResponse{}, nil
			},
		}
		r := newEmployeeRouter(svc, companyID)

		req := httptest.NewRequest(http.MethodGet, "/employees?limit=10&search=engineer&self=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_Directory(t *testing.T) {
	t.Run("directory route wins over the id route", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeEmployeeService{
			DirectoryFn: func(ctx context.Context, cid string) ([]employee.DirectoryEntry, error) {
				assert.Equal(t, companyID, cid)
				return []employee.DirectoryEntry{
					{EmployeeID: uuid.New().String(), FirstName: "Jane", Department: "Eng"},
				}, nil
			},
			GetFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
				t.Fatal("id route should not handle /directory")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newEmployeeRouter(svc, companyID)

		req := httptest.NewRequest(http.MethodGet, "/employees/directory", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                      `json:"ok"`
			Data []employee.DirectoryEntry `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		if assert.Len(t, env.Data, 1) {
			assert.Equal(t, "Jane", env.Data[0].FirstName)
		}
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("cross-company id is a 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		req := httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_UpdateDelete(t *testing.T) {
	t.Run("update responds with an empty 204", func(t *testing.T) {
		emplID := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, accountID, id string, req employee.UpdateEmployeeRequest) error {
				assert.Equal(t, emplID, id)
				assert.Equal(t, "Manager", req.Position)
				return nil
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		body := bytes.NewBufferString(`{"position":"Manager","hobbies":[]}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/"+emplID, body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("delete missing employee is a 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, accountID, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := newEmployeeRouter(svc, uuid.New().String())

		req := httptest.NewRequest(http.MethodDelete, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
