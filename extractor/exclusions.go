package extractor

// Built-in exclusion sets per grammar. These are immutable defaults handed
// to the constructors; tests and callers can substitute their own set via
// the With...Exclusions constructors instead of mutating package state.

func setOf(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// tsKeywords are reserved words of the ts-like grammar, never identifiers.
var tsKeywords = setOf(
	"abstract", "any", "as", "async", "await", "boolean", "break", "case",
	"catch", "class", "const", "continue", "debugger", "declare", "default",
	"delete", "do", "else", "enum", "export", "extends", "false", "finally",
	"for", "from", "function", "get", "if", "implements", "import", "in",
	"instanceof", "interface", "is", "keyof", "let", "namespace", "never",
	"new", "null", "number", "object", "of", "override", "private",
	"protected", "public", "readonly", "return", "satisfies", "set",
	"static", "string", "super", "switch", "symbol", "this", "throw",
	"true", "try", "type", "typeof", "undefined", "unknown", "var", "void",
	"while", "with", "yield",
)

// tsBuiltins are globals and standard-library names of the ts-like runtime.
var tsBuiltins = setOf(
	"Array", "ArrayBuffer", "BigInt", "Boolean", "DataView", "Date",
	"Error", "EvalError", "Function", "Infinity", "Intl", "JSON", "Map",
	"Math", "NaN", "Number", "Object", "Promise", "Proxy", "RangeError",
	"ReferenceError", "Reflect", "RegExp", "Set", "String", "Symbol",
	"SyntaxError", "TypeError", "URIError", "URL", "URLSearchParams",
	"WeakMap", "WeakSet", "clearInterval", "clearTimeout", "console",
	"decodeURI", "decodeURIComponent", "document", "encodeURI",
	"encodeURIComponent", "fetch", "globalThis", "isFinite", "isNaN",
	"localStorage", "navigator", "parseFloat", "parseInt", "process",
	"require", "sessionStorage", "setInterval", "setTimeout", "window",
)

// rustKeywords are reserved words of the ownership-syntax grammar.
var rustKeywords = setOf(
	"as", "async", "await", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in",
	"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return",
	"self", "Self", "static", "struct", "super", "trait", "true", "type",
	"unsafe", "use", "where", "while",
)

// rustBuiltins are prelude and primitive names of the ownership-syntax
// grammar.
var rustBuiltins = setOf(
	"Box", "Clone", "Copy", "Debug", "Default", "Drop", "Err", "Fn",
	"FnMut", "FnOnce", "From", "HashMap", "HashSet", "Into", "Iterator",
	"None", "Ok", "Option", "Ord", "PartialEq", "PartialOrd", "Rc",
	"Result", "Send", "Sized", "Some", "String", "Sync", "ToString", "Vec",
	"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128",
	"isize", "println", "print", "str", "u8", "u16", "u32", "u64", "u128",
	"usize", "vec", "write", "writeln",
)

// goBuiltins are predeclared identifiers and ubiquitous stdlib package
// names of the Go grammar. Keywords need no set here: the parser never
// yields them as identifiers.
var goBuiltins = setOf(
	"append", "any", "bool", "byte", "cap", "clear", "close", "comparable",
	"complex", "complex64", "complex128", "copy", "delete", "error",
	"false", "float32", "float64", "imag", "int", "int8", "int16", "int32",
	"int64", "iota", "len", "make", "max", "min", "new", "nil", "panic",
	"print", "println", "real", "recover", "rune", "string", "true",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"bytes", "context", "errors", "fmt", "io", "os", "sort", "strconv",
	"strings", "sync", "time",
)
