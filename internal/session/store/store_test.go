package store

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"shopfront/internal/model"
	"shopfront/pkg/memstore"
	pkgRedis "shopfront/pkg/redis"
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

// fakeRedis is a map-backed IRedis for testing.
type fakeRedis struct {
	values map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", pkgRedis.ErrNotFound
	}
	return v, nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeRedis) Close() error                   { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error { return nil }

// fakeHeaders records the outbound default header state.
type fakeHeaders struct {
	token  string
	userID string
	set    bool
}

func (f *fakeHeaders) SetIdentity(accessToken, userID string) {
	f.token = accessToken
	f.userID = userID
	f.set = true
}

func (f *fakeHeaders) ClearIdentity() {
	f.token = ""
	f.userID = ""
	f.set = false
}

// testCredential builds an unsigned credential whose payload carries the
// given subject and role.
func testCredential(subject, role string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"nameid":"` + subject + `","email":"` + subject + `@example.com","role":"` + role + `"}`))
	return header + "." + payload + "."
}

func newTestStore() (*Store, *fakeRedis, *memstore.Store, *fakeHeaders) {
	durable := newFakeRedis()
	volatile := memstore.New()
	headers := &fakeHeaders{}
	return New(&mockLogger{}, durable, volatile, headers), durable, volatile, headers
}

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s, durable, volatile, headers := newTestStore()

	cred := model.Credential{
		AccessToken:  testCredential("u-1", "Member"),
		RefreshToken: "refresh-1",
	}
	claims := token.Decode(cred.AccessToken)
	if claims == nil {
		t.Fatal("test credential does not decode")
	}
	identity := model.Identity{Credential: cred, Claims: *claims}

	if err := s.Save(ctx, identity); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, ok := durable.values["auth"]; !ok {
		t.Error("Save() did not write the durable record")
	}
	if uid, _ := volatile.Get("UserID"); uid != "u-1" {
		t.Errorf("volatile UserID = %q, want u-1", uid)
	}
	if !headers.set || headers.token != cred.AccessToken || headers.userID != "u-1" {
		t.Errorf("headers = %+v, want token and user id set", headers)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil, want identity")
	}
	if loaded.Claims.Subject != "u-1" {
		t.Errorf("Load() subject = %q, want u-1", loaded.Claims.Subject)
	}
	if loaded.Credential.RefreshToken != "refresh-1" {
		t.Errorf("Load() refresh token = %q, want refresh-1", loaded.Credential.RefreshToken)
	}
	if !loaded.HasRole(token.RoleMember) {
		t.Error("Load() identity lacks Member role")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := durable.values["auth"]; ok {
		t.Error("Clear() left the durable record in place")
	}
	if _, ok := volatile.Get("UserID"); ok {
		t.Error("Clear() left the volatile user id in place")
	}
	if headers.set {
		t.Error("Clear() left the outbound headers in place")
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestStore()

	identity, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if identity != nil {
		t.Errorf("Load() = %+v, want nil on empty store", identity)
	}
}

func TestStore_LoadDiscardsBadRecords(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{
			name:   "record is not JSON",
			record: "not-json",
		},
		{
			name:   "credential no longer decodes",
			record: `{"credential":{"accessToken":"garbage","refreshToken":"r"},"user":{"id":"u-1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, durable, _, headers := newTestStore()
			durable.values["auth"] = tt.record

			identity, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if identity != nil {
				t.Fatalf("Load() = %+v, want nil for bad record", identity)
			}
			if _, ok := durable.values["auth"]; ok {
				t.Error("Load() kept the bad durable record")
			}
			if headers.set {
				t.Error("Load() left headers set for bad record")
			}
		})
	}
}

func TestStore_SecondSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, _, volatile, headers := newTestStore()

	first := testCredential("u-1", "Member")
	second := testCredential("u-2", "Admin")

	for _, access := range []string{first, second} {
		claims := token.Decode(access)
		identity := model.Identity{
			Credential: model.Credential{AccessToken: access},
			Claims:     *claims,
		}
		if err := s.Save(ctx, identity); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if headers.userID != "u-2" || headers.token != second {
		t.Errorf("headers = %+v, want the second identity", headers)
	}
	if uid, _ := volatile.Get("UserID"); uid != "u-2" {
		t.Errorf("volatile UserID = %q, want u-2", uid)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil || loaded.Claims.Subject != "u-2" {
		t.Fatalf("Load() = %+v, want second identity", loaded)
	}
}
