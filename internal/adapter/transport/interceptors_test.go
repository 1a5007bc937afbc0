package transport

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eslsoft/curriculum/internal/core"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
)

func okUnary(called *bool) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*called = true
		return connect.NewResponse(&coursev1.CreateLessonResponse{}), nil
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		want connect.Code
	}{
		{err: fmt.Errorf("%w: title is required", core.ErrValidation), want: connect.CodeInvalidArgument},
		{err: core.ErrInvalidPageToken, want: connect.CodeInvalidArgument},
		{err: fmt.Errorf("%w: lesson", core.ErrNotFound), want: connect.CodeNotFound},
		{err: fmt.Errorf("%w: boundary", core.ErrDeclined), want: connect.CodeFailedPrecondition},
		{err: fmt.Errorf("%w: order 1 is already in use", core.ErrConflict), want: connect.CodeAlreadyExists},
		{err: fmt.Errorf("%w: %w", core.ErrStoreFailure, errors.New("db down")), want: connect.CodeUnavailable},
		{err: context.DeadlineExceeded, want: connect.CodeDeadlineExceeded},
		{err: errors.New("boom"), want: connect.CodeInternal},
		{err: connect.NewError(connect.CodeUnauthenticated, errors.New("no token")), want: connect.CodeUnauthenticated},
	}
	for _, tc := range cases {
		if got := connect.CodeOf(mapError(tc.err)); got != tc.want {
			t.Fatalf("mapError(%v) code = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func signedToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

func TestAuthInterceptor(t *testing.T) {
	const secret = "test-secret"
	interceptor := NewAuthInterceptor(secret)

	var subject string
	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		subject, _ = SubjectFromContext(ctx)
		return connect.NewResponse(&coursev1.GetLessonResponse{}), nil
	})

	call := func(header string) error {
		req := connect.NewRequest(&coursev1.GetLessonRequest{})
		if header != "" {
			req.Header().Set("Authorization", header)
		}
		_, err := unary(context.Background(), req)
		return err
	}

	valid := signedToken(t, secret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "instructor-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err := call("Bearer " + valid); err != nil {
		t.Fatalf("expected valid token to pass, got %v", err)
	}
	if subject != "instructor-1" {
		t.Fatalf("expected subject instructor-1, got %q", subject)
	}

	expired := signedToken(t, secret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "instructor-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signedToken(t, "other-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})
	wrongAlg := signedToken(t, secret, jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "x"})

	for name, header := range map[string]string{
		"missing":   "",
		"no bearer": valid,
		"expired":   "Bearer " + expired,
		"wrong key": "Bearer " + wrongKey,
		"wrong alg": "Bearer " + wrongAlg,
	} {
		if err := call(header); connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Fatalf("%s: expected unauthenticated, got %v", name, err)
		}
	}
}

func TestAuthInterceptor_DisabledWithoutSecret(t *testing.T) {
	interceptor := NewAuthInterceptor("")
	nextCalled := false
	unary := interceptor.WrapUnary(okUnary(&nextCalled))

	if _, err := unary(context.Background(), connect.NewRequest(&coursev1.GetLessonRequest{})); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called when auth is disabled")
	}
}
