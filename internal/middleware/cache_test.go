package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sunnyliu/county-health-api/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Add("X-Custom", "a")
	hdr.Add("X-Custom", "b")
	body := []byte(`[{"state":"MA"}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}

	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("header lost: %v", gotHdr)
	}
	if got := gotHdr.Values("X-Custom"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("multi-value header lost: %v", got)
	}
	if !bytes.Equal(gotBody, body) {
		t.Fatalf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsMalformed(t *testing.T) {
	for _, bs := range [][]byte{
		nil,
		[]byte("short"),
		{0, 0, 0, 200, 255, 255, 255, 255}, // header length past end of payload
	} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload(%v) ok, want rejection", bs)
		}
	}
}

// The writer keeps counting bytes after its buffer fills; the store branch
// relies on size to tell a complete capture from a truncated one.
func TestCaptureWriterTracksSizePastLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	payload := []byte(`[{"state":"MA"}]`)
	if _, err := cw.Write(payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	if cw.size != int64(len(payload)) {
		t.Fatalf("size = %d, want %d", cw.size, len(payload))
	}
	if cw.buf.Len() > 4 {
		t.Fatalf("buffer holds %d bytes, want at most 4", cw.buf.Len())
	}
	// The client still receives every byte.
	if rec.Body.String() != string(payload) {
		t.Fatalf("forwarded body = %q", rec.Body.String())
	}
	// An oversized capture must be recognizable so it is never cached.
	if cw.size <= cw.limit {
		t.Fatal("oversized response not detectable from size")
	}
}

func TestMiddlewaresPassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	called := false
	next := func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}

	for _, mw := range []echo.MiddlewareFunc{
		NewRedisCache(config.CacheConfig{Enabled: true}, nil),
		NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil),
	} {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/county_data", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := mw(next)(c); err != nil {
			t.Fatalf("middleware: %v", err)
		}
		if !called {
			t.Fatal("handler not reached with nil redis client")
		}
	}
}
