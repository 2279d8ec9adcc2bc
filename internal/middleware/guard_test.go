package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shopfront/internal/model"
	"shopfront/internal/session"
	"shopfront/pkg/token"
)

// mockLogger implements log.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockSession implements session.UseCase with a fixed snapshot.
type mockSession struct {
	snap session.Snapshot
}

func (m *mockSession) Restore(ctx context.Context) {}

func (m *mockSession) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	return nil, nil
}

func (m *mockSession) Logout(ctx context.Context) {}

func (m *mockSession) Refresh(ctx context.Context) (*model.Identity, error) { return nil, nil }

func (m *mockSession) Snapshot() session.Snapshot { return m.snap }

func identityWith(roles ...token.Role) *model.Identity {
	return &model.Identity{Claims: token.Claims{Subject: "u-1", Roles: roles}}
}

func newRouter(snap session.Snapshot, roles ...token.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, &mockSession{snap: snap})

	r := gin.New()
	handlers := []gin.HandlerFunc{mw.RequireSession()}
	if len(roles) > 0 {
		handlers = append(handlers, mw.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/guarded", handlers...)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name         string
		snap         session.Snapshot
		wantStatus   int
		wantLocation string
	}{
		{
			name: "authenticated passes through",
			snap: session.Snapshot{
				State:    session.StateAuthenticated,
				Identity: identityWith(token.RoleMember),
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "anonymous redirects to login",
			snap:         session.Snapshot{State: session.StateAnonymous},
			wantStatus:   http.StatusFound,
			wantLocation: LoginRoute,
		},
		{
			name:       "loading answers unavailable, not anonymous",
			snap:       session.Snapshot{State: session.StateLoading},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "uninitialized answers unavailable",
			snap:       session.Snapshot{State: session.StateUninitialized},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newRouter(tt.snap), "/guarded")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && w.Header().Get("Location") != tt.wantLocation {
				t.Errorf("location = %q, want %q", w.Header().Get("Location"), tt.wantLocation)
			}
			if tt.wantStatus == http.StatusServiceUnavailable && w.Header().Get("Retry-After") == "" {
				t.Error("503 response carries no Retry-After")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		snap := session.Snapshot{
			State:    session.StateAuthenticated,
			Identity: identityWith(token.RoleStaff),
		}
		w := get(newRouter(snap, token.RoleAdmin, token.RoleStaff), "/guarded")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("missing role redirects to default route", func(t *testing.T) {
		snap := session.Snapshot{
			State:    session.StateAuthenticated,
			Identity: identityWith(token.RoleMember),
		}
		w := get(newRouter(snap, token.RoleAdmin), "/guarded")
		if w.Code != http.StatusFound {
			t.Fatalf("status = %d, want 302", w.Code)
		}
		if got := w.Header().Get("Location"); got != DefaultRoute {
			t.Errorf("location = %q, want %q", got, DefaultRoute)
		}
	})
}

func TestIdentityFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	snap := session.Snapshot{
		State:    session.StateAuthenticated,
		Identity: identityWith(token.RoleMember),
	}
	mw := New(&mockLogger{}, &mockSession{snap: snap})

	var got *model.Identity
	r := gin.New()
	r.GET("/guarded", mw.RequireSession(), func(c *gin.Context) {
		got = IdentityFromContext(c)
		c.Status(http.StatusOK)
	})
	get(r, "/guarded")

	if got == nil || got.UserID() != "u-1" {
		t.Errorf("identity = %+v, want u-1", got)
	}
}
