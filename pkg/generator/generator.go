package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-natvisgen/pkg/namespace"
	"github.com/goliatone/go-natvisgen/pkg/natvis"
	"github.com/goliatone/go-natvisgen/pkg/params"
	"github.com/goliatone/go-natvisgen/pkg/render/template"
	"github.com/goliatone/go-natvisgen/pkg/render/template/gotemplate"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithParamsPath overrides params.DefaultPath.
func WithParamsPath(path string) Option {
	return func(g *Generator) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			g.paramsPath = trimmed
		}
	}
}

// WithOutputPath overrides natvis.DefaultOutputPath.
func WithOutputPath(path string) Option {
	return func(g *Generator) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			g.outputPath = trimmed
		}
	}
}

// WithTemplateDir loads the template from a directory on disk instead of the
// embedded bundle.
func WithTemplateDir(dir string) Option {
	return func(g *Generator) {
		g.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplatesFS replaces the embedded bundle.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(g *Generator) {
		g.templatesFS = fsys
	}
}

// WithTemplateName overrides natvis.TemplateName.
func WithTemplateName(name string) Option {
	return func(g *Generator) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			g.templateName = trimmed
		}
	}
}

// WithPrefix overrides namespace.DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = strings.TrimSpace(prefix)
	}
}

// WithTemplateData exposes extra values to the template. Pipeline values
// (namespace, version, abi_namespace, prefix, params) take precedence over
// keys of the same name.
func WithTemplateData(data map[string]any) Option {
	return func(g *Generator) {
		if len(data) == 0 {
			return
		}
		if g.templateData == nil {
			g.templateData = make(map[string]any, len(data))
		}
		for key, value := range data {
			g.templateData[key] = value
		}
	}
}

// WithTemplateFuncs registers template filters and callable globals, see
// gotemplate.WithTemplateFunc.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(g *Generator) {
		if len(funcs) == 0 {
			return
		}
		if g.templateFuncs == nil {
			g.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			g.templateFuncs[name] = fn
		}
	}
}

// WithRenderer injects a renderer, bypassing the template dir, FS, data and
// func options.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(g *Generator) {
		g.renderer = renderer
	}
}

// WithLogger sets the logger used for pipeline progress. Nil keeps the no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator runs the load, validate, derive, render and write pipeline.
type Generator struct {
	paramsPath    string
	outputPath    string
	templateDir   string
	templatesFS   fs.FS
	templateName  string
	prefix        string
	templateData  map[string]any
	templateFuncs map[string]any
	renderer      template.TemplateRenderer
	logger        *zap.Logger
	initialErr    error
}

// New constructs a Generator. Missing dependencies fall back to the embedded
// natvis template and the fkyaml prefix.
func New(options ...Option) *Generator {
	g := &Generator{
		paramsPath:   params.DefaultPath,
		outputPath:   natvis.DefaultOutputPath,
		templateName: natvis.TemplateName,
		prefix:       namespace.DefaultPrefix,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.renderer != nil {
		return
	}

	var engineOptions []gotemplate.Option
	switch {
	case g.templateDir != "":
		engineOptions = append(engineOptions, gotemplate.WithBaseDir(g.templateDir))
	case g.templatesFS != nil:
		engineOptions = append(engineOptions, gotemplate.WithFS(g.templatesFS))
	default:
		engineOptions = append(engineOptions, gotemplate.WithFS(natvis.TemplatesFS()))
	}

	engineOptions = append(engineOptions,
		gotemplate.WithGlobalData(g.templateData),
		gotemplate.WithTemplateFunc(g.templateFuncs),
	)

	engine, err := gotemplate.New(engineOptions...)
	if err != nil {
		g.initialErr = fmt.Errorf("generator: init renderer: %w", err)
		return
	}
	g.renderer = engine
}

// Result describes a completed run.
type Result struct {
	Namespace  namespace.Namespace
	OutputPath string
	// Output holds the rendered file content.
	Output []byte
	// Written is false for Preview.
	Written bool
}

// Generate renders the template for the configured params file and writes it
// to the output path, overwriting any existing file. Nothing is written when
// an earlier stage fails.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	result, err := g.Preview(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := writeFile(g.outputPath, result.Output); err != nil {
		return Result{}, err
	}
	result.Written = true

	g.logger.Info("output written",
		zap.String("path", g.outputPath),
		zap.Int("bytes", len(result.Output)))
	return result, nil
}

// Preview runs every stage except the final write.
func (g *Generator) Preview(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p, err := params.Load(g.paramsPath)
	if err != nil {
		return Result{}, err
	}
	g.logger.Debug("params loaded",
		zap.String("path", g.paramsPath),
		zap.String("version", p.Version))

	ns, output, err := g.render(p.Version, p.Values)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Namespace:  ns,
		OutputPath: g.outputPath,
		Output:     output,
	}, nil
}

// Render validates version and renders the template for it without touching
// the filesystem beyond reading the template.
func (g *Generator) Render(ctx context.Context, version string) ([]byte, namespace.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, namespace.Namespace{}, err
	}
	ns, output, err := g.render(version, nil)
	return output, ns, err
}

func (g *Generator) render(version string, values map[string]any) (namespace.Namespace, []byte, error) {
	if g.initialErr != nil {
		return namespace.Namespace{}, nil, g.initialErr
	}
	if g.renderer == nil {
		return namespace.Namespace{}, nil, errors.New("generator: renderer not configured")
	}

	ns, err := namespace.Derive(g.prefix, version)
	if err != nil {
		return namespace.Namespace{}, nil, err
	}
	g.logger.Info("namespace derived",
		zap.String("version", ns.Version),
		zap.String("namespace", ns.String()))

	data := map[string]any{
		"namespace":     ns.String(),
		"version":       ns.Version,
		"abi_namespace": ns.ABI,
		"prefix":        ns.Prefix,
		"params":        values,
	}
	rendered, err := g.renderer.RenderTemplate(g.templateName, data)
	if err != nil {
		return namespace.Namespace{}, nil, fmt.Errorf("generator: render %s: %w", g.templateName, err)
	}
	g.logger.Debug("template rendered",
		zap.String("template", g.templateName),
		zap.Int("bytes", len(rendered)))

	return ns, []byte(rendered), nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("generator: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", path, err)
	}
	return nil
}
