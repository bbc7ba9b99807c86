// Package generate renders a resolved catalog into Go source: one package
// per trait namespace, one per specification namespace and a root doc.go.
package generate

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/agentic-research/mediacreation/internal/emit"
	"github.com/agentic-research/mediacreation/internal/naming"
	"github.com/agentic-research/mediacreation/internal/schema"
	"github.com/agentic-research/mediacreation/trait"
)

const (
	// TraitRuntime and SpecificationRuntime are the import paths of the
	// runtime packages generated code depends on.
	TraitRuntime         = "github.com/agentic-research/mediacreation/trait"
	SpecificationRuntime = "github.com/agentic-research/mediacreation/specification"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"comment":         comment,
	"goType":          goType,
	"accessorKind":    accessorKind,
	"getter":          naming.Getter,
	"getterOr":        naming.GetterOr,
	"setter":          naming.Setter,
	"traitSetVar":     traitSetVar,
	"traitAlias":      traitAlias,
	"familyNames":     familyNames,
	"specFamilyNames": specFamilyNames,
	"alias":           namespaceAlias,
}).ParseFS(templateFS, "templates/*.go.tmpl"))

// Options configure a Generator.
type Options struct {
	// ImportPath is the import path of the output root. Specification
	// packages import trait packages below it.
	ImportPath string
	// Lint rejects output with undocumented exported declarations.
	Lint   bool
	Logger *slog.Logger
}

// Generator renders catalogs. It holds no per-run state and may be reused.
type Generator struct {
	importPath string
	lint       bool
	logger     *slog.Logger
}

// New returns a Generator. A nil logger discards output.
func New(opts Options) (*Generator, error) {
	if opts.ImportPath == "" {
		return nil, fmt.Errorf("generate: import path is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		importPath: strings.TrimSuffix(opts.ImportPath, "/"),
		lint:       opts.Lint,
		logger:     logger,
	}, nil
}

type docFile struct {
	*schema.Catalog
	Imports []importSpec
}

type traitFile struct {
	Namespace   *schema.TraitNamespace
	TraitImport string
}

type importSpec struct {
	Alias string
	Path  string
}

type specificationFile struct {
	Namespace *schema.SpecificationNamespace
	Imports   []importSpec
}

// Generate renders cat. The result is sorted by path and is byte-identical
// across runs for the same catalog.
func (g *Generator) Generate(cat *schema.Catalog) ([]emit.File, error) {
	var files []emit.File

	doc, err := g.render("doc.go.tmpl", "doc.go", docFile{Catalog: cat, Imports: g.docImports(cat)})
	if err != nil {
		return nil, err
	}
	files = append(files, doc)

	for _, ns := range cat.TraitNamespaces {
		p := path.Join("traits", ns.Package(), ns.Package()+".go")
		f, err := g.render("traits.go.tmpl", p, traitFile{Namespace: ns, TraitImport: TraitRuntime})
		if err != nil {
			return nil, err
		}
		g.logger.Debug("rendered trait namespace", "namespace", ns.Name, "families", len(ns.Families))
		files = append(files, f)
	}

	for _, ns := range cat.SpecificationNamespaces {
		p := path.Join("specifications", ns.Package(), ns.Package()+".go")
		data := specificationFile{Namespace: ns, Imports: g.specificationImports(ns)}
		f, err := g.render("specifications.go.tmpl", p, data)
		if err != nil {
			return nil, err
		}
		g.logger.Debug("rendered specification namespace", "namespace", ns.Name, "families", len(ns.Families))
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	g.logger.Info("generated catalog",
		"package", cat.Package,
		"files", len(files),
		"traits", len(cat.TraitClasses()),
		"specifications", len(cat.SpecificationClasses()))
	return files, nil
}

func (g *Generator) render(name, filePath string, data any) (emit.File, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return emit.File{}, fmt.Errorf("render %s: %w", filePath, err)
	}
	return emit.Process(emit.File{Path: filePath, Content: buf.Bytes()}, g.lint)
}

// docImports lists every namespace package, sorted by path as gofmt
// would. Trait packages are aliased since specification packages may share
// their names.
func (g *Generator) docImports(cat *schema.Catalog) []importSpec {
	imports := []importSpec{{Path: TraitRuntime}}
	if len(cat.SpecificationNamespaces) > 0 {
		imports = append(imports, importSpec{Path: SpecificationRuntime})
	}
	for _, ns := range cat.TraitNamespaces {
		imports = append(imports, importSpec{
			Alias: naming.TraitPackageAlias(ns.Name),
			Path:  path.Join(g.importPath, "traits", ns.Package()),
		})
	}
	for _, ns := range cat.SpecificationNamespaces {
		imports = append(imports, importSpec{Path: path.Join(g.importPath, "specifications", ns.Package())})
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}

// specificationImports lists the runtime packages plus every trait
// namespace a specification namespace draws members from.
func (g *Generator) specificationImports(ns *schema.SpecificationNamespace) []importSpec {
	seen := map[string]bool{}
	var traitNamespaces []string
	for _, f := range ns.Families {
		for _, c := range f.Versions {
			for _, m := range c.Members {
				name := m.Trait.Family.Namespace
				if !seen[name] {
					seen[name] = true
					traitNamespaces = append(traitNamespaces, name)
				}
			}
		}
	}
	sort.Strings(traitNamespaces)

	imports := []importSpec{{Path: SpecificationRuntime}, {Path: TraitRuntime}}
	for _, name := range traitNamespaces {
		imports = append(imports, importSpec{
			Alias: naming.TraitPackageAlias(name),
			Path:  path.Join(g.importPath, "traits", naming.PackageName(name)),
		})
	}
	return imports
}

// comment renders text as // lines. Blank lines become a bare //.
func comment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

func goType(k trait.Kind) string {
	switch k {
	case trait.Bool:
		return "bool"
	case trait.Int:
		return "int64"
	case trait.Float:
		return "float64"
	default:
		return "string"
	}
}

// accessorKind names both the trait.Kind constant and the typed helper
// family (trait.GetString, trait.SetString...) for k.
func accessorKind(k trait.Kind) string {
	switch k {
	case trait.Bool:
		return "Bool"
	case trait.Int:
		return "Int"
	case trait.Float:
		return "Float"
	default:
		return "String"
	}
}

func traitSetVar(c *schema.SpecificationClass) string {
	return naming.TraitSetVar(c.Name())
}

func traitAlias(c *schema.TraitClass) string {
	return naming.TraitPackageAlias(c.Family.Namespace)
}

func namespaceAlias(ns *schema.TraitNamespace) string {
	return naming.TraitPackageAlias(ns.Name)
}

func familyNames(ns *schema.TraitNamespace) string {
	names := make([]string, len(ns.Families))
	for i, f := range ns.Families {
		names[i] = f.ShortName()
	}
	return strings.Join(names, ", ")
}

func specFamilyNames(ns *schema.SpecificationNamespace) string {
	names := make([]string, len(ns.Families))
	for i, f := range ns.Families {
		names[i] = f.ShortName()
	}
	return strings.Join(names, ", ")
}
