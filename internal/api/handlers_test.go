package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)
	return router
}

func uploadRequest(t *testing.T, target string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "input.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCompressDecompressEndpoints(t *testing.T) {
	router := newTestRouter()
	input := bytes.Repeat([]byte("abracadabra "), 40)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/compress", input))
	if w.Code != http.StatusOK {
		t.Fatalf("compress: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Algorithm"); got != "huffman" {
		t.Errorf("expected X-Algorithm huffman, got %q", got)
	}
	if w.Header().Get("X-Compression-Ratio") == "" {
		t.Errorf("expected a compression ratio header")
	}
	compressed := w.Body.Bytes()
	if len(compressed) >= len(input) {
		t.Errorf("expected compressed output smaller than input")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/decompress", compressed))
	if w.Code != http.StatusOK {
		t.Fatalf("decompress: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Equal(w.Body.Bytes(), input) {
		t.Errorf("round trip through the API did not reproduce the input")
	}
}

func TestCompressEmptyFile(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/compress", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty file, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Empty file" {
		t.Errorf("expected Empty file error, got %q", resp.Error)
	}
}

func TestCompressMissingFile(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a file field, got %d", w.Code)
	}
}

func TestDecompressCorruptFile(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/decompress", []byte("definitely not a packed stream")))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for a corrupt stream, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Corrupt stream" {
		t.Errorf("expected Corrupt stream error, got %q", resp.Error)
	}
}

func TestHealthAndInfo(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/health", "/api/v1/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", target, w.Code)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/info: expected 200, got %d", w.Code)
	}
	var info map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info["service"] != "Huffman Compression Service" {
		t.Errorf("unexpected service name %v", info["service"])
	}
}
