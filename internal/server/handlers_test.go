package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/yardscan/yardscan-mcp/internal/search"
)

// createTestImageFile creates a solid-color test image file and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return f.Name()
}

// callTool runs one tools/call request through handleRequest.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// toolResultText extracts the JSON payload from an MCP content response.
func toolResultText(t *testing.T, resp *MCPResponse) string {
	t.Helper()

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result has unexpected type %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("Missing content in result: %+v", result)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("Content text has unexpected type %T", content[0]["text"])
	}
	return text
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.White)

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": imgPath})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := toolResultText(t, resp)
	if !strings.Contains(text, `"width": 100`) {
		t.Errorf("Expected width in result, got %s", text)
	}
}

func TestHandleToolsCall_ImagePrepare(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.White)

	resp := callTool(t, s, "image_prepare", map[string]interface{}{
		"path":           imgPath,
		"min_width":      0,
		"denoise_radius": 0,
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := toolResultText(t, resp)
	if !strings.Contains(text, `"image_base64"`) {
		t.Errorf("Expected prepared image in result, got %s", text)
	}
}

func TestHandleToolsCall_VehicleExtract(t *testing.T) {
	s := New()

	resp := callTool(t, s, "vehicle_extract", map[string]interface{}{
		"text": "2015 CHEVROLETIMPALA\nYARD ROW 3\n99 FORD F150",
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	var result VehicleListResult
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	if result.Count != 2 {
		t.Fatalf("Count: got %d, want 2", result.Count)
	}
	if result.Vehicles[0].FullText != "2015 CHEVROLET IMPALA" {
		t.Errorf("First record: got %q", result.Vehicles[0].FullText)
	}
	if result.Vehicles[1].FullText != "1999 FORD F150" {
		t.Errorf("Second record: got %q", result.Vehicles[1].FullText)
	}
}

func TestHandleToolsCall_VehicleFormat(t *testing.T) {
	s := New()

	resp := callTool(t, s, "vehicle_format", map[string]interface{}{
		"vehicles": []map[string]interface{}{
			{"year": "2015", "make": "CHEVROLET", "model": "IMPALA", "full_text": "2015 CHEVROLET IMPALA"},
			{"full_text": "RANDOM JUNK LINE"},
		},
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	var result FormatResult
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	want := "2015 CHEVROLET IMPALA\nRANDOM JUNK LINE"
	if result.Text != want {
		t.Errorf("Text: got %q, want %q", result.Text, want)
	}
}

func TestHandleToolsCall_MarketplaceSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"2015 Chevrolet Impala","price":8995,"location":"Portland, OR","url":"https://example.com/1"}]`))
	}))
	defer srv.Close()

	s := New()
	s.search = search.NewClient(srv.URL)

	resp := callTool(t, s, "marketplace_search", map[string]interface{}{
		"full_text":        "2015 CHEVROLET IMPALA",
		"exclude_keywords": []string{"parts"},
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	var result search.Result
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	if result.Query != "2015 CHEVROLET IMPALA -parts" {
		t.Errorf("Query: got %q", result.Query)
	}
	if result.Count != 1 {
		t.Errorf("Count: got %d, want 1", result.Count)
	}
}

func TestHandleToolsCall_MarketplaceSearchUnconfigured(t *testing.T) {
	t.Setenv("YARDSCAN_SEARCH_URL", "")
	s := New()

	resp := callTool(t, s, "marketplace_search", map[string]interface{}{
		"full_text": "2015 CHEVROLET IMPALA",
	})
	if resp.Error == nil {
		t.Fatal("Expected error when no search endpoint is configured")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New()

	resp := callTool(t, s, "image_rotate", map[string]interface{}{"path": "/x.png"})
	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`not json`),
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_ImageLoadMissingFile(t *testing.T) {
	s := New()

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": "/nonexistent/scan.png"})
	if resp.Error == nil {
		t.Fatal("Expected error for missing file")
	}
}
