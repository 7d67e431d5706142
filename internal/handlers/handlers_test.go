package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memorySink struct{ events []audit.Event }

func (s *memorySink) Log(_ context.Context, ev audit.Event) error {
	s.events = append(s.events, ev)
	return nil
}

// asAdmin simula o AuthMiddleware com um admin logado
func asAdmin(c *gin.Context) {
	c.Set(middleware.ContextUserID, uint(1))
	c.Set(middleware.ContextUserName, "Admin")
	c.Set(middleware.ContextUserRole, middleware.RoleAdmin)
	c.Next()
}

func asBarber(barberID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(2))
		c.Set(middleware.ContextUserName, "Ali")
		c.Set(middleware.ContextUserRole, middleware.RoleBarber)
		c.Set(middleware.ContextBarberID, barberID)
		c.Next()
	}
}

func perform(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rdr = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
}
