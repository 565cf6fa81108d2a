package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accountease/pkg/apperr"
	"accountease/pkg/utils"

	"go.uber.org/zap"
)

// stubResetService returns canned errors per step and records the session
// keys it was called with.
type stubResetService struct {
	requestErr error
	verifyErr  error
	commitErr  error

	requestKey string
	verifyKey  string
	commitKey  string
}

func (s *stubResetService) RequestReset(ctx context.Context, sessionKey, email string) error {
	s.requestKey = sessionKey
	return s.requestErr
}

func (s *stubResetService) VerifyCode(ctx context.Context, sessionKey, code string) error {
	s.verifyKey = sessionKey
	return s.verifyErr
}

func (s *stubResetService) CommitNewPassword(ctx context.Context, sessionKey, newPassword, confirmPassword string) error {
	s.commitKey = sessionKey
	return s.commitErr
}

func newResetHandlerTest() (*ResetHandler, *stubResetService) {
	stub := &stubResetService{}
	return NewResetHandler(stub, zap.NewNop()), stub
}

func postJSON(handler http.HandlerFunc, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func resetCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == resetCookieName {
			return c
		}
	}
	return nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// ==================== FORGOT ====================

func TestForgotPasswordSetsCookie(t *testing.T) {
	handler, stub := newResetHandlerTest()

	rec := postJSON(handler.ForgotPassword, "/api/password/forgot",
		`{"email":"operations@example.com"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	cookie := resetCookieFrom(t, rec)
	if cookie == nil {
		t.Fatal("expected reset cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("reset cookie must be HttpOnly")
	}
	if cookie.Value != stub.requestKey {
		t.Errorf("cookie carries %q, service saw %q", cookie.Value, stub.requestKey)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	handler, stub := newResetHandlerTest()
	stub.requestErr = apperr.NewNotFound("no account found with this email")

	rec := postJSON(handler.ForgotPassword, "/api/password/forgot",
		`{"email":"stranger@example.com"}`, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resetCookieFrom(t, rec) != nil {
		t.Error("no cookie should be set on failure")
	}
}

func TestForgotPasswordRejectsBadPayload(t *testing.T) {
	handler, _ := newResetHandlerTest()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing email", `{}`},
		{"not an email", `{"email":"not-an-address"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler.ForgotPassword, "/api/password/forgot", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

// ==================== VERIFY ====================

func TestVerifyOTPWithoutCookie(t *testing.T) {
	handler, _ := newResetHandlerTest()

	rec := postJSON(handler.VerifyOTP, "/api/password/verify-otp",
		`{"otp":"123456"}`, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestVerifyOTPPassesCookieKeyToService(t *testing.T) {
	handler, stub := newResetHandlerTest()
	cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

	rec := postJSON(handler.VerifyOTP, "/api/password/verify-otp",
		`{"otp":"123456"}`, cookie)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.verifyKey != "flow-key-1" {
		t.Errorf("service saw key %q, want flow-key-1", stub.verifyKey)
	}
}

func TestVerifyOTPRejectsMalformedCode(t *testing.T) {
	handler, _ := newResetHandlerTest()
	cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

	tests := []struct {
		name string
		body string
	}{
		{"too short", `{"otp":"12345"}`},
		{"too long", `{"otp":"1234567"}`},
		{"not numeric", `{"otp":"12a456"}`},
		{"missing", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler.VerifyOTP, "/api/password/verify-otp", tt.body, cookie)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestVerifyOTPErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantClear  bool
	}{
		{"invalid code", apperr.NewInvalidCode("invalid OTP"), http.StatusBadRequest, false},
		{"expired code", apperr.NewExpired("OTP expired"), http.StatusBadRequest, true},
		{"out of order", apperr.NewSequence("flow not started"), http.StatusConflict, true},
		{"internal", apperr.NewInternal("boom", nil), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, stub := newResetHandlerTest()
			stub.verifyErr = tt.err
			cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

			rec := postJSON(handler.VerifyOTP, "/api/password/verify-otp",
				`{"otp":"123456"}`, cookie)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			cleared := false
			if c := resetCookieFrom(t, rec); c != nil && c.MaxAge < 0 {
				cleared = true
			}
			if cleared != tt.wantClear {
				t.Errorf("cookie cleared = %v, want %v", cleared, tt.wantClear)
			}
		})
	}
}

// ==================== RESET ====================

func TestResetPasswordWithoutCookie(t *testing.T) {
	handler, _ := newResetHandlerTest()

	rec := postJSON(handler.ResetPassword, "/api/password/reset",
		`{"password":"NewSecret9!","confirm_password":"NewSecret9!"}`, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestResetPasswordSuccessClearsCookie(t *testing.T) {
	handler, stub := newResetHandlerTest()
	cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

	rec := postJSON(handler.ResetPassword, "/api/password/reset",
		`{"password":"NewSecret9!","confirm_password":"NewSecret9!"}`, cookie)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.commitKey != "flow-key-1" {
		t.Errorf("service saw key %q, want flow-key-1", stub.commitKey)
	}

	cleared := resetCookieFrom(t, rec)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Error("successful reset must clear the cookie")
	}
}

func TestResetPasswordErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantClear  bool
	}{
		{"mismatch", apperr.NewMismatch("passwords do not match"), http.StatusBadRequest, false},
		{"weak password", apperr.NewValidation("weak", []string{"too short"}), http.StatusBadRequest, false},
		{"out of order", apperr.NewSequence("flow not verified"), http.StatusConflict, true},
		{"internal", apperr.NewInternal("boom", nil), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, stub := newResetHandlerTest()
			stub.commitErr = tt.err
			cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

			rec := postJSON(handler.ResetPassword, "/api/password/reset",
				`{"password":"NewSecret9!","confirm_password":"NewSecret9!"}`, cookie)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			cleared := false
			if c := resetCookieFrom(t, rec); c != nil && c.MaxAge < 0 {
				cleared = true
			}
			if cleared != tt.wantClear {
				t.Errorf("cookie cleared = %v, want %v", cleared, tt.wantClear)
			}
		})
	}
}

func TestResetPasswordWeakPasswordCarriesReasons(t *testing.T) {
	handler, stub := newResetHandlerTest()
	stub.commitErr = apperr.NewValidation("weak", []string{"Password must be at least 8 characters long."})
	cookie := &http.Cookie{Name: resetCookieName, Value: "flow-key-1"}

	rec := postJSON(handler.ResetPassword, "/api/password/reset",
		`{"password":"x1","confirm_password":"x1"}`, cookie)

	resp := decodeResponse(t, rec)
	if resp.Errors == nil {
		t.Error("validation response should carry the reasons")
	}
}
