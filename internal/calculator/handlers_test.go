package calculator

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remote-calc/internal/handlers"
	"remote-calc/internal/observability"
	"remote-calc/internal/testutil"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setup(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}
	return logs
}

func post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/calculator/calculate", bytes.NewReader([]byte(body)))
	return testutil.ExecuteRequest(req, http.HandlerFunc(Calculate))
}

func TestCalculateOperators(t *testing.T) {
	setup(t)

	tests := []struct {
		operator string
		a, b     float64
		want     float64
	}{
		{operator: "+", a: 5, b: 3, want: 8},
		{operator: "-", a: 5, b: 3, want: 2},
		{operator: "*", a: 5, b: 3, want: 15},
		{operator: "/", a: 6, b: 3, want: 2},
		{operator: "/", a: 1, b: 4, want: 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.operator, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/calculator/calculate", CalcRequest{
				Operator: tc.operator,
				A:        tc.a,
				B:        tc.b,
			})
			w := testutil.ExecuteRequest(req, http.HandlerFunc(Calculate))

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var resp CalcResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)

			if resp.Result != tc.want {
				t.Fatalf("expected result %g, got %g", tc.want, resp.Result)
			}
			if resp.Operator != tc.operator {
				t.Fatalf("expected operator %q echoed, got %q", tc.operator, resp.Operator)
			}
		})
	}
}

func TestCalculateRejections(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{name: "malformed body", body: `{"operator":`, msg: "invalid request body"},
		{name: "equals is not an operation", body: `{"operator":"=","a":1,"b":2}`, msg: "unsupported operator"},
		{name: "unknown operator", body: `{"operator":"%","a":1,"b":2}`, msg: "unsupported operator"},
		{name: "missing operator", body: `{"a":1,"b":2}`, msg: "unsupported operator"},
		{name: "division by zero", body: `{"operator":"/","a":7,"b":0}`, msg: "division by zero"},
		{name: "overflow", body: `{"operator":"*","a":1e308,"b":1e308}`, msg: "calculation failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(tc.body)

			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var resp handlers.ErrorResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)

			if resp.Error != tc.msg {
				t.Fatalf("expected error %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestCalculateLogsCompletion(t *testing.T) {
	logs := setup(t)

	w := post(`{"operator":"*","a":4,"b":2.5}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("calculator operation completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["operation"] != "multiply" {
		t.Fatalf("expected operation %q, got %#v", "multiply", fields["operation"])
	}
	if fields["result"] != 10.0 {
		t.Fatalf("expected result 10, got %#v", fields["result"])
	}
}

func TestLookup(t *testing.T) {
	op, err := lookup("-")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got, _ := op.compute(1, 3); got != -2 {
		t.Fatalf("expected -2, got %g", got)
	}

	div, _ := lookup("/")
	if _, err := div.compute(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := lookup("="); !errors.Is(err, ErrUnknownOperator) {
		t.Fatalf("expected ErrUnknownOperator, got %v", err)
	}
}
