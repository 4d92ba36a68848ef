package group_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"jample-admin/internal/backend"
	"jample-admin/internal/group"
	groupMock "jample-admin/internal/group/mock"
	"jample-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*gin.Engine, *groupMock.MockRepository) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repo := groupMock.NewMockRepository(ctrl)
	h := group.NewHandler(group.NewService(repo, nil, 0))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, sess)
		c.Next()
	})
	r.POST("/groups", h.Create)
	r.PUT("/groups/:id", h.Update)
	r.DELETE("/groups/:id", h.Delete)
	r.PUT("/groups/:id/members/:employeeId", h.AssignEmployee)
	return r, repo
}

func TestGroupHandler_Create(t *testing.T) {
	r, repo := setupHandler(t)
	repo.EXPECT().Create(gomock.Any(), sess, gomock.Any()).
		Return(backend.EmployeeGroup{EmployeeGroupID: 1, Name: "A"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/groups", bytes.NewBufferString(`{"name":"A","credits":1000}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGroupHandler_Update(t *testing.T) {
	t.Run("rollover out of range is 422", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/groups/4", bytes.NewBufferString(`{"rollover_percentage":150}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/groups/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGroupHandler_AssignEmployee(t *testing.T) {
	r, repo := setupHandler(t)
	repo.EXPECT().Assign(gomock.Any(), sess, int64(4), "emp-7").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/groups/4/members/emp-7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
