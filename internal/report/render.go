package report

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// DefaultFileName is where the report command writes its output.
const DefaultFileName = "anketa-report.html"

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, d Data) (string, error) {
	var builder strings.Builder
	if err := page(d).Render(ctx, &builder); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return builder.String(), nil
}

// WriteFile renders the report and writes it to path.
func WriteFile(ctx context.Context, path string, d Data) error {
	html, err := RenderHTML(ctx, d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
