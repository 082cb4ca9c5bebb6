package extractor

import (
	"strings"
	"testing"
)

// declared finds one aggregated identifier by name.
func declared(t *testing.T, x *Extraction, name string) Identifier {
	t.Helper()
	for _, id := range x.Declared {
		if id.Name == name {
			return id
		}
	}
	t.Fatalf("%q not declared in %v", name, x.Declared)
	return Identifier{}
}

// checkSpans verifies that every recorded identifier span slices back to its
// own name.
func checkSpans(t *testing.T, src string, x *Extraction) {
	t.Helper()
	for _, tok := range x.Identifiers {
		if src[tok.Start:tok.End] != tok.Name {
			t.Errorf("span [%d,%d) = %q, want %q", tok.Start, tok.End, src[tok.Start:tok.End], tok.Name)
		}
	}
}

func TestTSLikeFunctionDeclaration(t *testing.T) {
	src := "// greet the user\nfunction greetUser(firstName) {\n  const message = `hi`;\n  return message;\n}\n"

	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	checkSpans(t, src, x)

	if got := declared(t, x, "greetUser"); got.Category != CategoryFunction {
		t.Errorf("greetUser category = %q", got.Category)
	}
	if got := declared(t, x, "firstName"); got.Category != CategoryParameter {
		t.Errorf("firstName category = %q", got.Category)
	}
	if got := declared(t, x, "message"); got.Category != CategoryVariable || got.Count != 2 {
		t.Errorf("message = %+v", got)
	}

	if len(x.Comments) != 1 || x.Comments[0].Text != "greet the user" {
		t.Errorf("Comments = %+v", x.Comments)
	}
	if x.Comments[0].Start != 0 || x.Comments[0].End != len("// greet the user") {
		t.Errorf("comment span = [%d,%d)", x.Comments[0].Start, x.Comments[0].End)
	}

	if len(x.Strings) != 1 || x.Strings[0].Value != "hi" || x.Strings[0].Quote != '`' {
		t.Errorf("Strings = %+v", x.Strings)
	}
}

func TestTSLikeClassMembers(t *testing.T) {
	src := `class Account {
  balance: number;
  private owner = "";
  deposit(amount: number): void {}
}
interface Shape {
  area(): number;
  sides: number;
}
enum Color { Red, Green }`

	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	checkSpans(t, src, x)

	wantCats := map[string]Category{
		"Account": CategoryClass,
		"balance": CategoryProperty,
		"owner":   CategoryProperty,
		"deposit": CategoryMethod,
		"amount":  CategoryParameter,
		"Shape":   CategoryInterface,
		"area":    CategoryMethod,
		"sides":   CategoryProperty,
		"Color":   CategoryEnum,
		"Red":     CategoryEnumMember,
		"Green":   CategoryEnumMember,
	}
	for name, cat := range wantCats {
		if got := declared(t, x, name); got.Category != cat {
			t.Errorf("%s category = %q, want %q", name, got.Category, cat)
		}
	}
}

func TestTSLikeArrowFunctions(t *testing.T) {
	src := "const add = (first, second) => first + second;\nitems.map(item => item.id);"

	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for name, cat := range map[string]Category{
		"add":    CategoryVariable,
		"first":  CategoryParameter,
		"second": CategoryParameter,
		"item":   CategoryParameter,
	} {
		if got := declared(t, x, name); got.Category != cat {
			t.Errorf("%s category = %q, want %q", name, got.Category, cat)
		}
	}
}

func TestTSLikeParamAnnotationsSkipped(t *testing.T) {
	src := "function send(payload: RequestBody, retries = defaultRetries) {}"

	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	declared(t, x, "payload")
	declared(t, x, "retries")
	for _, id := range x.Declared {
		if id.Name == "RequestBody" || id.Name == "defaultRetries" {
			t.Errorf("annotation or default value declared as parameter: %v", id)
		}
	}
}

func TestTSLikeTypeAlias(t *testing.T) {
	src := "type UserId = string;\ntype Pair<T> = [T, T];"
	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := declared(t, x, "UserId"); got.Category != CategoryTypeAlias {
		t.Errorf("UserId category = %q", got.Category)
	}
	if got := declared(t, x, "Pair"); got.Category != CategoryTypeAlias {
		t.Errorf("Pair category = %q", got.Category)
	}
}

func TestTSLikeBuiltinsExcludedFromDeclared(t *testing.T) {
	src := "const console = 1;"
	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(x.Declared) != 0 {
		t.Errorf("builtin declared: %v", x.Declared)
	}
	// The occurrence itself is still inventoried for rewriting.
	if len(x.Identifiers) != 1 || x.Identifiers[0].Name != "console" {
		t.Errorf("Identifiers = %v", x.Identifiers)
	}
}

func TestTSLikeUnterminatedString(t *testing.T) {
	src := "const s = \"oops\nconst tail = 1;"
	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// The unterminated literal stops at the line break and scanning
	// continues.
	if len(x.Strings) != 1 || x.Strings[0].Value != "oops" {
		t.Errorf("Strings = %+v", x.Strings)
	}
	declared(t, x, "tail")
}

func TestTSLikeMultilineTemplateLiteral(t *testing.T) {
	src := "const q = `line one\nline two`;\nconst after = 1;"
	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(x.Strings) != 1 || !strings.Contains(x.Strings[0].Value, "line two") {
		t.Errorf("Strings = %+v", x.Strings)
	}
	if got := declared(t, x, "after"); got.Line != 3 {
		t.Errorf("after line = %d, want 3", got.Line)
	}
}

func TestTSLikeUnicodeIdentifiers(t *testing.T) {
	// Already-translated spellings must scan as identifiers so the reverse
	// direction can rewrite them.
	src := "function 計算する(値) { return 値; }"
	x, err := NewTSLike().Extract(src)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	checkSpans(t, src, x)

	if got := declared(t, x, "計算する"); got.Category != CategoryFunction {
		t.Errorf("計算する = %+v", got)
	}
	occurrences := 0
	for _, tok := range x.Identifiers {
		if tok.Name == "値" {
			occurrences++
		}
	}
	if occurrences != 2 {
		t.Errorf("値 occurrences = %d, want 2", occurrences)
	}
}
