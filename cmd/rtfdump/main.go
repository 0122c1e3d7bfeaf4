// Command rtfdump imports an RTF file and prints it as text, Markdown, HTML
// or the raw importer event stream.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tsawler/rtfimport"
	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/internal/logging"
	"github.com/tsawler/rtfimport/ole"
)

const version = "0.1.0"

// CLI defines the command-line interface for rtfdump.
type CLI struct {
	File string `arg:"" help:"RTF or compressed RTF file, - for stdin" default:"-"`

	Output      string `short:"o" enum:"text,markdown,html,events" default:"text" help:"Output format (${enum})"`
	Paste       bool   `help:"Import as pasted content: no settings, classification checked"`
	CodePage    int    `name:"codepage" default:"1252" help:"Code page used before \\ansicpg"`
	EmbedImages bool   `name:"embed-images" help:"Write pictures as data URLs in HTML output"`
	Objects     bool   `help:"List embedded OLE objects after the output"`
	Info        bool   `help:"Print document properties after the output"`

	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})"`

	Version kong.VersionFlag `help:"Print version information"`
}

// Run imports the file and writes the requested output.
func (c *CLI) Run(ctx *kong.Context) error {
	return c.run(ctx.Stdout, ctx.Stderr, os.Stdin)
}

func (c *CLI) logger(stderr io.Writer) *slog.Logger {
	format := logging.FormatText
	if c.LogFormat == "json" {
		format = logging.FormatJSON
	}
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: format,
		Output: stderr,
	})
}

func (c *CLI) run(stdout, stderr io.Writer, stdin io.Reader) error {
	log := c.logger(stderr)

	var ext *rtfimport.Extractor
	if c.File == "-" {
		ext = rtfimport.FromReader(stdin)
	} else {
		ext = rtfimport.Open(c.File)
	}

	objects := ole.NewMemContainer()
	props := docprops.New()
	pictures := graphic.NewCache(nil)
	ext = ext.
		DefaultCodePage(c.CodePage).
		WithLogger(log).
		WithObjects(objects).
		WithProperties(props).
		WithGraphics(pictures)
	if c.Paste {
		ext = ext.AsPaste().WithClassification(docprops.NewLevelChecker())
	}
	if c.EmbedImages {
		ext = ext.EmbedImages()
	}

	var (
		out      string
		warnings []rtfimport.Warning
		err      error
	)
	switch c.Output {
	case "markdown":
		out, warnings, err = ext.Markdown()
	case "html":
		out, warnings, err = ext.HTML()
	case "events":
		rec, w, rerr := ext.Events()
		warnings, err = w, rerr
		if rec != nil {
			out = rec.Dump()
		}
	default:
		out, warnings, err = ext.Text()
	}
	for _, w := range warnings {
		log.Warn("import warning", "warning", w.Message)
	}
	if err != nil {
		return fmt.Errorf("importing %s: %w", c.File, err)
	}

	if _, err := io.WriteString(stdout, out); err != nil {
		return err
	}
	log.Debug("import finished", "pictures", pictures.Len(), "duplicates", pictures.Hits())

	if c.Info {
		printInfo(stdout, props)
	}
	if c.Objects {
		printObjects(stdout, objects)
	}
	return nil
}

var infoFields = []struct {
	name  string
	field docprops.Field
}{
	{"Title", docprops.FieldTitle},
	{"Subject", docprops.FieldSubject},
	{"Author", docprops.FieldAuthor},
	{"Operator", docprops.FieldOperator},
	{"Keywords", docprops.FieldKeywords},
	{"Comment", docprops.FieldComment},
	{"Company", docprops.FieldCompany},
	{"Manager", docprops.FieldManager},
	{"Category", docprops.FieldCategory},
}

func printInfo(w io.Writer, p *docprops.Properties) {
	fmt.Fprintln(w, "\n=== Properties ===")
	for _, f := range infoFields {
		if v := p.Text(f.field); v != "" {
			fmt.Fprintf(w, "%s: %s\n", f.name, v)
		}
	}
	if t, ok := p.Time(docprops.FieldCreated); ok {
		fmt.Fprintf(w, "Created: %s\n", t.Format("2006-01-02 15:04"))
	}
	if t, ok := p.Time(docprops.FieldRevised); ok {
		fmt.Fprintf(w, "Revised: %s\n", t.Format("2006-01-02 15:04"))
	}
	for _, u := range p.User() {
		fmt.Fprintf(w, "%s = %s\n", u.Name, u.Value)
	}
}

func printObjects(w io.Writer, c *ole.MemContainer) {
	fmt.Fprintln(w, "\n=== Objects ===")
	for _, name := range c.Names() {
		obj, _ := c.Get(name)
		kind := "embedded"
		if obj.FormatID == ole.FormatLinked {
			kind = "linked"
		}
		fmt.Fprintf(w, "%s: %s %s (%s), %d bytes, compound=%t\n",
			name, kind, obj.ProgID, obj.ClassName, len(obj.Data), obj.IsCompound())
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rtfdump"),
		kong.Description("Import RTF documents and print their content"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": version},
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
