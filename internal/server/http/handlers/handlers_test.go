package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/server/http/dto"
	"github.com/polkiloo/customerhub/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/customerhub/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, resp *httptest.ResponseRecorder) dto.MessageResponse {
	t.Helper()
	var body dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", resp.Body.String(), err)
	}
	return body
}

func TestCurrentClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := CurrentClaims(c); ok {
		t.Fatal("expected no claims when not set")
	}

	c.Set(middleware.ClaimsContextKey, model.Claims{Email: "a@b.c", Name: "A"})
	claims, ok := CurrentClaims(c)
	if !ok || claims.Email != "a@b.c" {
		t.Fatalf("unexpected claims %+v ok=%v", claims, ok)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	name := testhelpers.RandomASCIIString(3, 10)
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.RegisterRequest{Name: name, Email: email, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(_ context.Context, gotName, gotEmail, gotPassword string) (string, error) {
		if gotName != name || gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected input passed to facade: %q %q %q", gotName, gotEmail, gotPassword)
		}
		return "signed-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if token.JWTToken != "signed-token" {
		t.Fatalf("unexpected token %q", token.JWTToken)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	failWith := func(err error) testhelpers.AuthFacadeStub {
		return testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", err
		}}
	}
	valid := []byte(`{"name":"a","email":"a@b.c","password":"secret"}`)

	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, message: MessageInvalidBody},
		{name: "missing field", body: []byte(`{"name":"","email":"","password":""}`), facade: failWith(domainErrors.ErrMissingField), status: http.StatusBadRequest, message: MessageMissingFields},
		{name: "weak password", body: valid, facade: failWith(domainErrors.ErrWeakPassword), status: http.StatusBadRequest, message: MessageWeakPassword},
		{name: "already exists", body: valid, facade: failWith(domainErrors.ErrAlreadyExists), status: http.StatusBadRequest, message: MessageUserExists},
		{name: "internal", body: valid, facade: failWith(errors.New("connection refused")), status: http.StatusInternalServerError, message: MessageInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			body := decodeMessage(t, resp)
			if body.Success || body.Message != tt.message {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "passw"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil || token.JWTToken != "token" {
		t.Fatalf("unexpected token response %q err=%v", resp.Body.String(), err)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	failWith := func(err error) testhelpers.AuthFacadeStub {
		return testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", err
		}}
	}
	valid := []byte(`{"email":"a@b.c","password":"b"}`)

	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("{"), status: http.StatusBadRequest, message: MessageInvalidBody},
		{name: "missing field", body: []byte(`{}`), facade: failWith(domainErrors.ErrMissingField), status: http.StatusBadRequest, message: MessageMissingLogin},
		{name: "unknown user", body: valid, facade: failWith(domainErrors.ErrInvalidUser), status: http.StatusBadRequest, message: MessageInvalidUser},
		{name: "wrong password", body: valid, facade: failWith(domainErrors.ErrInvalidPassword), status: http.StatusBadRequest, message: MessageInvalidPassword},
		{name: "internal", body: valid, facade: failWith(errors.New("boom")), status: http.StatusInternalServerError, message: MessageInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if body := decodeMessage(t, resp); body.Message != tt.message {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestAuthHandlerInternalErrorIsNotLeaked(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", errors.New("pq: password authentication failed for user postgres")
	}}
	var recorded []string
	resp := performRequest(t, http.MethodPost, "/login", "/login", func(c *gin.Context) {
		NewAuthHandler(facade).Login(c)
		recorded = c.Errors.Errors()
	}, nil, []byte(`{"email":"a@b.c","password":"b"}`), jsonHeaders)

	if bytes.Contains(resp.Body.Bytes(), []byte("postgres")) {
		t.Fatalf("internal detail leaked: %s", resp.Body.String())
	}
	if len(recorded) != 1 {
		t.Fatalf("expected error to be attached for logging, got %v", recorded)
	}
}

func TestAuthHandlerProtected(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/protected-route", "/protected-route", NewAuthHandler(testhelpers.AuthFacadeStub{}).Protected, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != MessageProtectedResource {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
