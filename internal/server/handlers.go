package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"fortio.org/log"

	"github.com/ironsheep/colorpeek/internal/service"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke ("color_describe" or "color_preview").
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
// Encoder failures are reported without their internal detail.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.toolErrorResponse(req.ID, params.Name, err)
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

// toolErrorResponse reports a failed tool call. Client errors carry their
// message; anything else is logged and reported generically.
func (s *Server) toolErrorResponse(id interface{}, tool string, err error) *MCPResponse {
	if !service.IsClientError(err) {
		log.Errf("Tool %s failed: %v", tool, err)
		return s.errorResponse(id, -32000, "Tool execution failed", "could not make image")
	}
	return s.errorResponse(id, -32000, "Tool execution failed", err.Error())
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "color_describe":
		return s.handleColorDescribe(args)
	case "color_preview":
		return s.handleColorPreview(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type colorDescribeArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	var a colorDescribeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return service.DescribeColor(a.Color)
}

type colorPreviewArgs struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	Type  string `json:"type"`
}

// PreviewResult contains an encoded preview image.
type PreviewResult struct {
	Height      int    `json:"height"`
	Width       int    `json:"width"`
	MimeType    string `json:"mime_type"`
	ImageBase64 string `json:"image_base64"`
}

func (s *Server) handleColorPreview(args json.RawMessage) (interface{}, error) {
	var a colorPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := service.RenderImage(a.Color, a.Size, a.Type)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Height:      img.Size.Height,
		Width:       img.Size.Width,
		MimeType:    img.ContentType,
		ImageBase64: base64.StdEncoding.EncodeToString(img.Data),
	}, nil
}
