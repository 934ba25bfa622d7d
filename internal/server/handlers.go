package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yardscan/yardscan-mcp/internal/extract"
	"github.com/yardscan/yardscan-mcp/internal/imaging"
	"github.com/yardscan/yardscan-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "vehicle_scan").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image handling
	case "image_load":
		return s.handleImageLoad(args)
	case "image_prepare":
		return s.handleImagePrepare(args)

	// OCR
	case "scan_text":
		return s.handleScanText(args)

	// Extraction
	case "vehicle_extract":
		return s.handleVehicleExtract(args)
	case "vehicle_format":
		return s.handleVehicleFormat(args)
	case "vehicle_scan":
		return s.handleVehicleScan(args)

	// Marketplace
	case "marketplace_search":
		return s.handleMarketplaceSearch(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadScanInfo(s.cache, a.Path)
}

type imagePrepareArgs struct {
	Path          string   `json:"path"`
	MinWidth      *int     `json:"min_width"`
	Contrast      *float64 `json:"contrast"`
	DenoiseRadius *float64 `json:"denoise_radius"`
	Binarize      bool     `json:"binarize"`
}

// prepOptions merges explicit arguments over the tuned defaults.
// Pointer fields distinguish "omitted" from an explicit zero, which is a
// meaningful value for every numeric option here.
func (a imagePrepareArgs) prepOptions() imaging.PrepOptions {
	opts := imaging.DefaultPrepOptions()
	if a.MinWidth != nil {
		opts.MinWidth = *a.MinWidth
	}
	if a.Contrast != nil {
		opts.Contrast = *a.Contrast
	}
	if a.DenoiseRadius != nil {
		opts.DenoiseRadius = *a.DenoiseRadius
	}
	opts.Binarize = a.Binarize
	return opts
}

func (s *Server) handleImagePrepare(args json.RawMessage) (interface{}, error) {
	var a imagePrepareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.PrepareForScan(img, a.prepOptions())
}

// === OCR Handlers ===

type scanTextArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Region   *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleScanText(args json.RawMessage) (interface{}, error) {
	var a scanTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	if a.Region == nil {
		return ocr.Scan(a.Path, a.Language)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return ocr.ScanRegion(img, a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2, a.Language)
}

// === Extraction Handlers ===

// VehicleListResult contains the extracted vehicle list.
type VehicleListResult struct {
	// Vehicles is the ordered list of extracted records, one per
	// surviving input line.
	Vehicles []extract.Vehicle `json:"vehicles"`

	// Count is the number of records.
	Count int `json:"count"`
}

type vehicleExtractArgs struct {
	Text string `json:"text"`
}

func (s *Server) handleVehicleExtract(args json.RawMessage) (interface{}, error) {
	var a vehicleExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	vehicles := extract.ParseVehicleList(a.Text)
	return &VehicleListResult{
		Vehicles: vehicles,
		Count:    len(vehicles),
	}, nil
}

// FormatResult contains the rendered vehicle list.
type FormatResult struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type vehicleFormatArgs struct {
	Vehicles []extract.Vehicle `json:"vehicles"`
}

func (s *Server) handleVehicleFormat(args json.RawMessage) (interface{}, error) {
	var a vehicleFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &FormatResult{
		Text:  extract.FormatVehicleList(a.Vehicles),
		Count: len(a.Vehicles),
	}, nil
}

// ScanListResult is the output of the full photo-to-vehicles pipeline.
type ScanListResult struct {
	// Vehicles is the ordered extracted list.
	Vehicles []extract.Vehicle `json:"vehicles"`

	// Count is the number of records.
	Count int `json:"count"`

	// RawText is the OCR output the list was extracted from, kept for
	// display alongside the records.
	RawText string `json:"raw_text"`

	// OCRConfidence is the mean word confidence of the scan (0..1).
	OCRConfidence float64 `json:"ocr_confidence"`
}

type vehicleScanArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Binarize bool   `json:"binarize"`
}

func (s *Server) handleVehicleScan(args json.RawMessage) (interface{}, error) {
	var a vehicleScanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.DefaultPrepOptions()
	opts.Binarize = a.Binarize
	prepared, _ := imaging.Prepare(img, opts)

	tmpPath, err := ocr.SaveImageToTemp(prepared, "yardscan")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	scan, err := ocr.Scan(tmpPath, a.Language)
	if err != nil {
		return nil, err
	}

	vehicles := extract.ParseVehicleList(scan.Text)
	return &ScanListResult{
		Vehicles:      vehicles,
		Count:         len(vehicles),
		RawText:       scan.Text,
		OCRConfidence: scan.Confidence,
	}, nil
}

// === Marketplace Handlers ===

type marketplaceSearchArgs struct {
	FullText        string   `json:"full_text"`
	ExcludeKeywords []string `json:"exclude_keywords"`
}

func (s *Server) handleMarketplaceSearch(args json.RawMessage) (interface{}, error) {
	var a marketplaceSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.search == nil {
		return nil, fmt.Errorf("marketplace search not configured: set YARDSCAN_SEARCH_URL")
	}
	return s.search.Search(context.Background(), a.FullText, a.ExcludeKeywords)
}
