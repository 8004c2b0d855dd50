// Package povray invokes the POV-Ray program on a rendered scene file.
// The program must be reachable through PATH under its default name, or
// the pov-ray-program option can point at an alternative location.
package povray

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/exec"

	"github.com/tschijnmo/ccpoviz/internal/ctxlog"
)

// Request describes one rendering run.
type Request struct {
	// Program is the POV-Ray executable to invoke.
	Program string

	// InputFile is the scene file; OutputFile is the picture to write.
	InputFile  string
	OutputFile string

	// Width is the picture width in pixels; the height follows from
	// the aspect ratio.
	Width       float64
	AspectRatio float64

	// Transparent asks for an alpha channel instead of an opaque
	// background.
	Transparent bool

	// Keep leaves the scene file behind after a successful render.
	Keep bool
}

// Args gives the POV-Ray command line for the request, without the
// program itself.
func (r *Request) Args() []string {
	height := int(math.Round(r.Width / r.AspectRatio))
	args := []string{
		fmt.Sprintf("+I%s", r.InputFile),
		fmt.Sprintf("+W%d", int(r.Width)),
		fmt.Sprintf("+H%d", height),
		fmt.Sprintf("+O%s", r.OutputFile),
	}
	if r.Transparent {
		args = append(args, "+UA")
	}
	return args
}

// Run invokes POV-Ray and, unless asked to keep it, removes the scene
// file after a successful render.
func Run(ctx context.Context, req *Request) error {
	log := ctxlog.FromContext(ctx)

	args := req.Args()
	log.Debug("invoking POV-Ray",
		slog.String("program", req.Program),
		slog.Any("args", args),
	)

	cmd := exec.CommandContext(ctx, req.Program, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("POV-Ray returned with error: %w", err)
	}

	if !req.Keep {
		if err := os.Remove(req.InputFile); err != nil {
			return fmt.Errorf("cannot remove the scene file: %w", err)
		}
	}
	return nil
}
