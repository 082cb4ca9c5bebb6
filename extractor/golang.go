package extractor

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// Go extracts translatable units from Go source. This grammar has a full
// parser available, so declaration sites come from walking the syntax tree
// and every span carries tree-exact offsets.
type Go struct {
	exclusions map[string]bool
}

// NewGo creates a Go extractor with the default exclusion set.
func NewGo() *Go {
	return &Go{exclusions: goBuiltins}
}

// NewGoWithExclusions substitutes a custom built-in exclusion set.
func NewGoWithExclusions(exclusions map[string]bool) *Go {
	return &Go{exclusions: exclusions}
}

// Kind returns the grammar family name.
func (e *Go) Kind() string { return KindGoSource }

// IsBuiltin reports whether name is in the exclusion set.
func (e *Go) IsBuiltin(name string) bool { return e.exclusions[name] }

// Extract parses src and inventories identifiers, comments and strings.
func (e *Go) Extract(src string) (*Extraction, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", src, parser.ParseComments)
	if err != nil {
		return nil, &ParseError{Message: "failed to parse Go source", Cause: err, Grammar: KindGoSource}
	}

	tf := fset.File(file.Pos())
	offset := func(p token.Pos) int { return tf.Offset(p) }
	lineOf := func(p token.Pos) int { return tf.Line(p) }

	x := &Extraction{}

	// Comments first: the parser attaches every group to the file, so no
	// residual scan is needed for this grammar.
	for _, cg := range file.Comments {
		for _, c := range cg.List {
			x.Comments = append(x.Comments, parseSlashComment(c.Text, offset(c.Pos()), offset(c.End()), nil))
		}
	}

	var decls []declSite

	fieldNames := func(fields *ast.FieldList, cat Category) {
		if fields == nil {
			return
		}
		for _, f := range fields.List {
			for _, name := range f.Names {
				decls = append(decls, declSite{name.Name, cat, lineOf(name.Pos())})
			}
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.Ident:
			if node.Name != "_" {
				x.Identifiers = append(x.Identifiers, IdentToken{
					Name:  node.Name,
					Start: offset(node.Pos()),
					End:   offset(node.End()),
					Line:  lineOf(node.Pos()),
				})
			}

		case *ast.BasicLit:
			if node.Kind == token.STRING {
				raw := node.Value
				lit := StringLiteral{
					Value: raw,
					Start: offset(node.Pos()),
					End:   offset(node.End()),
					Line:  lineOf(node.Pos()),
				}
				if len(raw) >= 2 {
					lit.Quote = raw[0]
					lit.Value = raw[1 : len(raw)-1]
				}
				x.Strings = append(x.Strings, lit)
			}

		case *ast.FuncDecl:
			cat := CategoryFunction
			if node.Recv != nil {
				cat = CategoryMethod
			}
			decls = append(decls, declSite{node.Name.Name, cat, lineOf(node.Name.Pos())})
			fieldNames(node.Type.Params, CategoryParameter)

		case *ast.FuncLit:
			fieldNames(node.Type.Params, CategoryParameter)

		case *ast.TypeSpec:
			cat := CategoryTypeAlias
			switch node.Type.(type) {
			case *ast.StructType:
				cat = CategoryStruct
			case *ast.InterfaceType:
				cat = CategoryInterface
			}
			decls = append(decls, declSite{node.Name.Name, cat, lineOf(node.Name.Pos())})

		case *ast.StructType:
			fieldNames(node.Fields, CategoryProperty)

		case *ast.GenDecl:
			if node.Tok == token.CONST || node.Tok == token.VAR {
				cat := CategoryVariable
				if node.Tok == token.CONST {
					cat = CategoryConst
				}
				for _, spec := range node.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok {
						continue
					}
					for _, name := range vs.Names {
						if name.Name != "_" {
							decls = append(decls, declSite{name.Name, cat, lineOf(name.Pos())})
						}
					}
				}
			}

		case *ast.AssignStmt:
			if node.Tok == token.DEFINE {
				for _, lhs := range node.Lhs {
					if ident, ok := lhs.(*ast.Ident); ok && ident.Name != "_" {
						decls = append(decls, declSite{ident.Name, CategoryVariable, lineOf(ident.Pos())})
					}
				}
			}
		}
		return true
	})

	x.Declared = aggregate(decls, x.Identifiers, e.exclusions)
	return x, nil
}
