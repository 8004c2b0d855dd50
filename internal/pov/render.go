package pov

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tschijnmo/ccpoviz/internal/ctxlog"
	"github.com/tschijnmo/ccpoviz/internal/scene"
)

//go:embed scene.pov.tmpl texturedef.pov.tmpl
var templateFS embed.FS

var sceneTemplate = template.Must(
	template.New("scene.pov.tmpl").
		Funcs(template.FuncMap{
			"povnum": func(f float64) string {
				return fmt.Sprintf("%7.4f", f)
			},
		}).
		ParseFS(templateFS, "scene.pov.tmpl", "texturedef.pov.tmpl"),
)

// Render produces the POV-Ray input file content for a scene.
func Render(sc *scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := sceneTemplate.Execute(&buf, sc); err != nil {
		return nil, fmt.Errorf("cannot render the scene: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName gives the name of the POV-Ray input file next to the output
// picture, with only the extension differing.
func FileName(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".pov"
}

// WriteFile renders the scene and writes it next to the output picture.
// The name of the written file is returned.
func WriteFile(ctx context.Context, output string, sc *scene.Scene) (string, error) {
	name := FileName(output)

	content, err := Render(sc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(name, content, 0o644); err != nil {
		return "", fmt.Errorf("cannot write the scene file: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("wrote scene file",
		slog.String("path", name),
		slog.Int("bytes", len(content)),
	)
	return name, nil
}
