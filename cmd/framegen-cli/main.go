package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-framegen/pkg/config"
	"github.com/goliatone/go-framegen/pkg/orchestrator"
	"github.com/goliatone/go-framegen/pkg/params"
	"github.com/goliatone/go-framegen/pkg/render"
	"github.com/goliatone/go-framegen/pkg/renderers/chrome"
	"github.com/goliatone/go-framegen/pkg/renderers/controls"
	"github.com/goliatone/go-framegen/pkg/template"
)

type setFlags map[string]string

func (s setFlags) String() string {
	pairs := make([]string, 0, len(s))
	for key, value := range s {
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (s setFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	s[key] = value
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file (defaults used if empty)")
	templateKey := flag.String("template", "1080x1920/default.html", "template key or file path")
	title := flag.String("title", "", "frame title")
	text := flag.String("text", "", "frame text content")
	image := flag.String("image", "", "image path or URL")
	output := flag.String("output", "", "output file (auto-generated if empty)")
	schemaOnly := flag.Bool("schema", false, "print the template parameter schema as JSON and exit")
	controlsOut := flag.String("controls", "", "write an HTML controls page for the template and exit")
	interactive := flag.Bool("interactive", false, "prompt for declared parameter values")
	ext := setFlags{}
	flag.Var(ext, "set", "extension parameter as key=value (repeatable)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	source := resolveSource(cfg, *templateKey)
	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(chrome.New(
		chrome.WithLocator(locatorFor(cfg.Browser)),
		chrome.WithOutputDir(cfg.OutputDir),
		chrome.WithFlags(cfg.Browser.Flags),
	))

	gen := orchestrator.New(
		orchestrator.WithFallbackSize(cfg.DefaultSize),
		orchestrator.WithRegistry(registry),
	)

	schema, err := gen.Schema(ctx, source)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	if *schemaOnly {
		printSchema(schema)
		return
	}

	if *controlsOut != "" {
		writeControls(ctx, *controlsOut, *templateKey, schema)
		return
	}

	values := make(map[string]any, len(ext))
	for key, raw := range ext {
		values[key] = coerceValue(schema, key, raw)
	}
	if *interactive {
		promptValues(schema, values)
	}

	if *text == "" {
		log.Fatalf("-text is required to render a frame")
	}

	frame, err := gen.Generate(ctx, orchestrator.Request{
		Source:     source,
		Title:      *title,
		Text:       *text,
		Image:      *image,
		Ext:        values,
		OutputPath: *output,
	})
	if err != nil {
		log.Fatalf("render frame: %v", err)
	}

	fmt.Printf("Frame written to %s (%dx%d)\n", frame.Path, frame.Width, frame.Height)
}

func locatorFor(browser config.Browser) chrome.Locator {
	if browser.Executable != "" {
		return chrome.FixedLocator(browser.Executable)
	}
	if len(browser.Candidates) > 0 {
		return chrome.NewSystemLocator(chrome.WithCandidates(browser.Candidates...))
	}
	return chrome.DefaultLocator()
}

func resolveSource(cfg config.Config, key string) template.Source {
	if _, err := os.Stat(key); err == nil {
		return template.SourceFromFile(key)
	}
	source, err := cfg.Resolver().Resolve(key)
	if err != nil {
		log.Fatalf("resolve template: %v", err)
	}
	return source
}

func printSchema(schema params.Schema) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schema.Declarations()); err != nil {
		log.Fatalf("encode schema: %v", err)
	}
}

func writeControls(ctx context.Context, path, templateName string, schema params.Schema) {
	renderer, err := controls.New()
	if err != nil {
		log.Fatalf("controls renderer: %v", err)
	}
	page, err := renderer.Render(ctx, templateName, schema)
	if err != nil {
		log.Fatalf("render controls: %v", err)
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		log.Fatalf("write controls page: %v", err)
	}
	fmt.Printf("Controls page written to %s\n", path)
}

// promptValues asks for each declared parameter not already pinned via -set,
// using a prompt shape that matches the declared type.
func promptValues(schema params.Schema, values map[string]any) {
	for _, decl := range schema.Declarations() {
		if _, pinned := values[decl.Name]; pinned {
			continue
		}

		switch decl.Type {
		case params.TypeBool:
			def, _ := decl.Default.(bool)
			var answer bool
			prompt := &survey.Confirm{Message: decl.Label + "?", Default: def}
			if err := survey.AskOne(prompt, &answer); err != nil {
				log.Fatalf("prompt %s: %v", decl.Name, err)
			}
			values[decl.Name] = answer
		default:
			var answer string
			prompt := &survey.Input{
				Message: decl.Label + ":",
				Default: params.Stringify(decl.Default),
			}
			if err := survey.AskOne(prompt, &answer); err != nil {
				log.Fatalf("prompt %s: %v", decl.Name, err)
			}
			values[decl.Name] = coerceAnswer(decl, answer)
		}
	}
}

// coerceValue interprets a -set value against the schema so typed parameters
// substitute in their natural form. Unknown keys stay as text.
func coerceValue(schema params.Schema, key, raw string) any {
	decl, ok := schema.Get(key)
	if !ok {
		return raw
	}
	return coerceAnswer(decl, raw)
}

func coerceAnswer(decl params.Declaration, raw string) any {
	switch decl.Type {
	case params.TypeNumber:
		if strings.Contains(raw, ".") {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				return f
			}
		} else if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
		log.Printf("invalid number for %s: %q, passing through as text", decl.Name, raw)
		return raw
	case params.TypeBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes", "on":
			return true
		default:
			return false
		}
	default:
		return raw
	}
}
