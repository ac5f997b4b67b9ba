package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	lspace "github.com/grindlemire/go-lspace"
	"github.com/grindlemire/go-lspace/internal/config"
	"github.com/grindlemire/go-lspace/internal/debug"
)

// viewport is a WxH size given on the command line.
type viewport struct {
	width, height int
}

func (v viewport) String() string {
	return fmt.Sprintf("%dx%d", v.width, v.height)
}

func parseViewport(s string) (viewport, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return viewport{}, fmt.Errorf("size %q must be WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return viewport{}, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return viewport{}, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return viewport{}, fmt.Errorf("size %q must be positive", s)
	}
	return viewport{width: w, height: h}, nil
}

// viewportList collects repeated -size flags.
type viewportList []viewport

func (l *viewportList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

func (l *viewportList) Set(s string) error {
	v, err := parseViewport(s)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

// sceneFlags are the flags shared by render and dump.
type sceneFlags struct {
	configPath string
	sceneName  string
	textPath   string
}

func (f *sceneFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&f.sceneName, "scene", "hello", "Scene to build")
	fs.StringVar(&f.textPath, "text", "", "File holding the body text")
}

// load reads the configuration, starts debug logging if configured and
// builds the scene. The returned close func stops debug logging.
func (f *sceneFlags) load() (config.Config, lspace.Pres, func(), error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, nil, err
	}

	closeLog := func() {}
	if cfg.Debug.LogFile != "" {
		if err := debug.Init(cfg.Debug.LogFile); err != nil {
			return cfg, nil, nil, err
		}
		closeLog = func() { debug.Close() }
	}

	sc, err := findScene(f.sceneName)
	if err != nil {
		closeLog()
		return cfg, nil, nil, err
	}
	body, err := readBody(f.textPath)
	if err != nil {
		closeLog()
		return cfg, nil, nil, err
	}
	root, err := sc.build(cfg, body)
	if err != nil {
		closeLog()
		return cfg, nil, nil, fmt.Errorf("building scene %s: %w", sc.name, err)
	}
	return cfg, root, closeLog, nil
}

// runRender implements the render subcommand.
// Each requested size is laid out and painted by its own Area, concurrently,
// all sharing one presentation tree.
func runRender(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var sf sceneFlags
	sf.register(fs)
	output := fs.String("o", "", "Output PNG path")
	var sizes viewportList
	fs.Var(&sizes, "size", "Viewport size WxH (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, root, closeLog, err := sf.load()
	if err != nil {
		return err
	}
	defer closeLog()

	if *output == "" {
		*output = cfg.Render.Output
	}
	if len(sizes) == 0 {
		sizes = viewportList{{width: cfg.Render.Width, height: cfg.Render.Height}}
	}

	opts, err := cfg.AreaOptions()
	if err != nil {
		return err
	}

	paths := make([]string, len(sizes))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range sizes {
		paths[i] = outputPath(*output, v, len(sizes) > 1)
		g.Go(func() error {
			return renderOne(root, opts, v, paths[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, v := range sizes {
		fmt.Fprintf(out, "wrote %s (%s)\n", paths[i], v)
	}
	return nil
}

// outputPath returns path, or path with -WxH before its extension when
// several sizes are rendered.
func outputPath(path string, v viewport, multi bool) string {
	if !multi {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), v, ext)
}

func renderOne(root lspace.Pres, opts []lspace.AreaOption, v viewport, path string) error {
	area, err := lspace.NewArea(root, opts...)
	if err != nil {
		return err
	}
	defer area.Destroy()

	start := time.Now()
	if err := area.OnSizeAllocate(v.width, v.height); err != nil {
		return fmt.Errorf("%s: %w", v, err)
	}

	surface := lspace.NewImageSurface(v.width, v.height, area.Faces())
	if err := area.OnDraw(surface); err != nil {
		return fmt.Errorf("%s: %w", v, err)
	}
	if err := surface.SavePNG(path); err != nil {
		return fmt.Errorf("%s: %w", v, err)
	}
	debug.Log("render %s -> %s in %v", v, path, time.Since(start))
	return nil
}
