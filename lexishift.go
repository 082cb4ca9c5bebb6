// Package lexishift is a bidirectional source-code translation engine.
//
// Lexishift rewrites the human-language vocabulary of a program (its
// identifiers and comments, optionally its string literals, keywords and
// punctuation) between natural languages, while leaving the code
// syntactically valid and semantically unchanged. Translations come from a
// hub-based multi-language dictionary that stores only English↔foreign pairs
// and pivots through English for arbitrary language pairs, so the
// transformation is losslessly reversible.
//
// Basic usage:
//
//	import (
//	    "github.com/lexishift/lexishift"
//	    "github.com/lexishift/lexishift/dictionary"
//	)
//
//	func main() {
//	    dict, err := dictionary.Load("ja.dict.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    hub, _ := dictionary.NewMultiLanguage(dict)
//
//	    engine := lexishift.New(hub, lexishift.WithScope(lexishift.ScopeDefault))
//	    result, err := engine.TranslateFile("main.ts", src, "en", "ja")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Code)
//	}
package lexishift
