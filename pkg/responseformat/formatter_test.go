package responseformat

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type payload struct {
	Name  string `json:"name"`
	Value Number `json:"value"`
}

func TestWriteResponseJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trig/tangent/1", nil)

	if err := NewFormatter().WriteResponse(rec, req, http.StatusOK, payload{Name: "tangent", Value: 1.5}); err != nil {
		t.Fatalf("WriteResponse() error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}

	var got payload
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got.Value != 1.5 || got.Name != "tangent" {
		t.Errorf("decoded %+v", got)
	}
}

func TestWriteResponseMsgPack(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trig/tangent/1?format=msgpack", nil)

	if err := NewFormatter().WriteResponse(rec, req, http.StatusOK, payload{Name: "tangent", Value: Number(math.Inf(1))}); err != nil {
		t.Fatalf("WriteResponse() error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got map[string]any
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if v, ok := got["value"].(float64); !ok || !math.IsInf(v, 1) {
		t.Errorf("value = %#v, expected +Inf", got["value"])
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trig/arcsine/2", nil)

	NewFormatter().WriteError(rec, req, http.StatusUnprocessableEntity, errors.New("argument outside [-1, 1]"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error != "argument outside [-1, 1]" {
		t.Errorf("body = %+v, %v", body, err)
	}
}

func TestNumberJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.25, "0.25"},
		{-3, "-3"},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
		{math.NaN(), `"NaN"`},
	}

	for _, tt := range tests {
		b, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", tt.in, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%v) = %s, expected %s", tt.in, b, tt.want)
		}

		var back Number
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", b, err)
		}
		if !(float64(back) == tt.in || math.IsNaN(tt.in) && math.IsNaN(float64(back))) {
			t.Errorf("Unmarshal(%s) = %v, expected %v", b, back, tt.in)
		}
	}
}
