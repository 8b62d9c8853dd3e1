// Package service exposes the two operations every transport serves:
// describing a color and rendering a preview of it.
//
// Both are pure functions of their string arguments. Transports (HTTP, MCP,
// CLI) pass the raw client tokens through and use IsClientError to pick a
// status for failures.
package service

import (
	"errors"

	"github.com/ironsheep/colorpeek/internal/colorspace"
	"github.com/ironsheep/colorpeek/internal/imaging"
)

// DescribeColor resolves token and returns the color in every supported model.
func DescribeColor(token string) (colorspace.Report, error) {
	return colorspace.Describe(token)
}

// RenderImage renders a solid preview of the color named by token.
//
// An empty formatToken means "png" and an empty sizeToken means "128x128".
// Arguments are validated in the order format, size, color, so a request
// with several problems reports the first of those.
func RenderImage(token, sizeToken, formatToken string) (*imaging.RenderedImage, error) {
	format := imaging.DefaultFormat
	if formatToken != "" {
		f, err := imaging.ResolveFormat(formatToken)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if sizeToken == "" {
		sizeToken = imaging.DefaultSizeToken
	}
	size, err := imaging.ParseSize(sizeToken)
	if err != nil {
		return nil, err
	}

	c, err := colorspace.Parse(token)
	if err != nil {
		return nil, err
	}

	return imaging.Render(c, size, format)
}

// IsClientError reports whether err was caused by the request rather than by
// the server. Only encoder failures count as server errors.
func IsClientError(err error) bool {
	var re *imaging.RenderError
	return err != nil && !errors.As(err, &re)
}
