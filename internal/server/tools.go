package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image handling
		{
			Name:        "image_load",
			Description: "Load an inventory photo and return its dimensions, format and file size. Caches the image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_prepare",
			Description: "Preprocess an inventory photo for OCR: grayscale, upscale, denoise, contrast stretch and optional binarization. Returns the prepared image as base64 PNG plus exposure statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"min_width": map[string]interface{}{
						"type":        "integer",
						"description": "Upscale narrower images to this width (default 1200, 0 disables)",
						"default":     1200,
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Relative contrast change, -1 to 1 (default 0.2)",
						"default":     0.2,
					},
					"denoise_radius": map[string]interface{}{
						"type":        "number",
						"description": "Median filter radius in pixels (default 1, 0 disables)",
						"default":     1,
					},
					"binarize": map[string]interface{}{
						"type":        "boolean",
						"description": "Threshold to black and white at the analyzed luminance midpoint",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// OCR
		{
			Name:        "scan_text",
			Description: "Run OCR over an inventory photo (or a rectangular region of it) and return the recognized text with a mean confidence score.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language hint (default 'eng')",
						"default":     "eng",
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to scan. If omitted, scans the entire image.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Extraction
		{
			Name:        "vehicle_extract",
			Description: "Extract a structured, ordered vehicle list (year/make/model) from raw OCR text of a yard-inventory list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Raw OCR text, one vehicle per line",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "vehicle_format",
			Description: "Render a vehicle list as plain text, one full_text per line. Accepts externally edited records unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vehicles": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"year":      map[string]interface{}{"type": "string"},
								"make":      map[string]interface{}{"type": "string"},
								"model":     map[string]interface{}{"type": "string"},
								"full_text": map[string]interface{}{"type": "string"},
							},
							"required": []string{"full_text"},
						},
						"description": "Vehicle records to render",
					},
				},
				"required": []string{"vehicles"},
			},
		},
		{
			Name:        "vehicle_scan",
			Description: "Full pipeline: preprocess an inventory photo, OCR it and extract the structured vehicle list in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language hint (default 'eng')",
						"default":     "eng",
					},
					"binarize": map[string]interface{}{
						"type":        "boolean",
						"description": "Binarize during preprocessing",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Marketplace
		{
			Name:        "marketplace_search",
			Description: "Search the configured marketplace for one vehicle's full text, excluding listings that match the given keywords. Returns ranked listings. Requires YARDSCAN_SEARCH_URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"full_text": map[string]interface{}{
						"type":        "string",
						"description": "Vehicle full text to search for, e.g. \"2015 CHEVROLET IMPALA\"",
					},
					"exclude_keywords": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Keywords to exclude from results, e.g. [\"parts\", \"salvage\"]",
					},
				},
				"required": []string{"full_text"},
			},
		},
	}
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
