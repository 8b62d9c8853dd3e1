package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color as hex (\"#FF8040\", \"ff8040\", \"f80\"), CSS name (\"tomato\") or CSS function (\"rgb(255,128,64)\", \"hsl(20,100%,63%)\")",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "color_describe",
			Description: "Convert a color to RGB, CMYK, HSV, HSL, OKLab and OKLCh. Fractions are 0-1, hues are degrees 0-360.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_preview",
			Description: "Render a solid image of a color and return it base64-encoded with its MIME type.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"size": map[string]interface{}{
						"type":        "string",
						"description": "HEIGHTxWIDTH in pixels, each clamped to 1-500. Default 128x128",
						"default":     "128x128",
					},
					"type": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "gif", "webp", "ico", "tiff", "svg"},
						"description": "Output format. Default png",
						"default":     "png",
					},
				},
				"required": []string{"color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
