package emit

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

type Diagnostic struct {
	Message string
	Line    uint32
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line+1, d.Message)
}

// Lint checks generated Go content for exported top-level declarations
// that lack a doc comment on the line directly above them.
func Lint(content []byte, filePath string) ([]Diagnostic, error) {
	root, err := parseGo(content, filePath)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	count := int(root.NamedChildCount())
	for i := 0; i < count; i++ {
		decl := root.NamedChild(i)
		for _, name := range declaredNames(decl, content) {
			if !isExported(name) || hasDocComment(decl) {
				continue
			}
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("exported %s %s has no doc comment", kindOf(decl), name),
				Line:    decl.StartPoint().Row,
			})
		}
	}
	return diags, nil
}

// declaredNames returns the names a top-level declaration introduces.
// Methods report their own name, not the receiver's.
func declaredNames(decl *sitter.Node, content []byte) []string {
	switch decl.Type() {
	case "function_declaration", "method_declaration":
		if n := decl.ChildByFieldName("name"); n != nil {
			return []string{n.Content(content)}
		}
	case "type_declaration":
		var names []string
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			spec := decl.NamedChild(i)
			if n := spec.ChildByFieldName("name"); n != nil {
				names = append(names, n.Content(content))
			}
		}
		return names
	}
	return nil
}

func kindOf(decl *sitter.Node) string {
	switch decl.Type() {
	case "method_declaration":
		return "method"
	case "type_declaration":
		return "type"
	default:
		return "func"
	}
}

func hasDocComment(decl *sitter.Node) bool {
	prev := decl.PrevNamedSibling()
	return prev != nil && prev.Type() == "comment" && prev.EndPoint().Row+1 == decl.StartPoint().Row
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
