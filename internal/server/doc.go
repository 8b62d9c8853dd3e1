// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color report and
// preview operations through the MCP protocol, so MCP clients can convert
// colors and look at swatches without going through HTTP.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - color_describe: Color in RGB, CMYK, HSV, HSL, OKLab and OKLCh
//   - color_preview: Solid image of a color as base64 (png, jpeg, gif, webp,
//     ico, tiff or svg)
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The short reason, e.g. "invalid hex value" or "unsupported extension: bmp"
//
// Encoder failures are logged and reported only as "could not make image".
// Lines that are not valid JSON get a -32700 parse error response with a null id.
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package server
