package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/echoflaresat/geomkit/batch"
	"github.com/echoflaresat/geomkit/config"
	"github.com/echoflaresat/geomkit/render"
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/scene"
	"github.com/rs/zerolog/log"
)

func evaluate(ctx context.Context, cfg *config.Config, s *scene.Scene) (*batch.Report, error) {
	e, err := batch.NewEvaluator(cfg.Eval.Workers, cfg.Eval.CacheSize)
	if err != nil {
		return nil, err
	}
	rep, err := e.Evaluate(ctx, s)
	if err != nil {
		return nil, err
	}
	for _, f := range rep.Failures() {
		log.Warn().
			Int("query", f.Index).
			Str("op", string(f.Op)).
			Strs("operands", f.Operands).
			Msg(f.Error)
	}
	return rep, nil
}

func evalCommand(cfg *config.Config, scenePath, out string) error {
	format, err := batch.ParseFormat(cfg.Eval.Format)
	if err != nil {
		return err
	}
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().
		Str("scene", scenePath).
		Int("queries", len(s.Queries)).
		Int("workers", cfg.Eval.Workers).
		Msg("evaluating")
	rep, err := evaluate(ctx, cfg, s)
	if err != nil {
		return err
	}

	if out == "" {
		return rep.Encode(os.Stdout, format)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := rep.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	log.Info().Str("out", out).Str("format", string(format)).Msg("report written")
	return f.Close()
}

// newRenderer frames the scene with the configured camera angles. A
// non-zero distance keeps the camera that far from the scene center.
func newRenderer(cfg *config.Config, s *scene.Scene) (render.Renderer, error) {
	style, err := cfg.Render.Style()
	if err != nil {
		return render.Renderer{}, err
	}
	lo, hi, _ := s.Bounds()
	yaw, pitch, fov := cfg.Render.Angles()
	camera := render.FitCamera(lo, hi, yaw, pitch, fov)
	if cfg.Render.Distance > 0 {
		camera = render.NewCamera(camera.Target, cfg.Render.Distance, yaw, pitch, fov)
	}
	return render.Renderer{
		Camera: camera,
		Width:  cfg.Render.Size,
		Height: cfg.Render.Size,
		Style:  style,
	}, nil
}

func renderScene(ctx context.Context, cfg *config.Config, s *scene.Scene, withResults bool) (*image.NRGBA, error) {
	r, err := newRenderer(cfg, s)
	if err != nil {
		return nil, err
	}
	var rep *batch.Report
	if withResults {
		if rep, err = evaluate(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	return r.Render(s, rep), nil
}

func renderCommand(cfg *config.Config, scenePath, out string, withResults bool) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Str("scene", scenePath).Int("size", cfg.Render.Size).Msg("rendering")
	img, err := renderScene(ctx, cfg, s, withResults)
	if err != nil {
		return err
	}
	if err := render.WriteImage(out, img); err != nil {
		return err
	}
	log.Info().Str("out", out).Msg("image written")
	return nil
}

func inspectCommand(w io.Writer, scenePath string) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	return inspect(w, s)
}

func inspect(w io.Writer, s *scene.Scene) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "segments:")
	for _, name := range scene.Names(s.Segments) {
		seg := s.Segments[name]
		fmt.Fprintf(tw, "  %s\t%s\tlength %s\n", name, seg, scalar.Format(seg.Length()))
	}
	fmt.Fprintln(tw, "orbs:")
	for _, name := range scene.Names(s.Orbs) {
		fmt.Fprintf(tw, "  %s\t%s\n", name, s.Orbs[name])
	}
	fmt.Fprintln(tw, "planes:")
	for _, name := range scene.Names(s.Planes) {
		fmt.Fprintf(tw, "  %s\t%s\n", name, s.Planes[name].Normalize())
	}
	fmt.Fprintln(tw, "hexahedra:")
	for _, name := range scene.Names(s.Hexahedra) {
		h := s.Hexahedra[name]
		fmt.Fprintf(tw, "  %s\t%s\n", name, h)
		for i, pl := range h.Planes() {
			fmt.Fprintf(tw, "    %s\t%s\n", batch.FaceNames[i], pl.Normalize())
		}
	}
	fmt.Fprintln(tw, "queries:")
	for i, q := range s.Queries {
		args := strings.Join(q.Operands(), " ")
		if q.Point != nil {
			args += " " + q.Point.String()
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", i, q.Op, args)
	}
	return tw.Flush()
}
