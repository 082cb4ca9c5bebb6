package lexishift

import (
	"regexp"
	"strings"
	"unicode"
)

// keywordTables maps a language to its reserved-word equivalents, keyed by
// the English spelling. Keyword translation only applies to languages
// present here; every other language skips the pass entirely.
var keywordTables = map[LanguageCode]map[string]string{
	"ja": {
		"abstract":   "抽象",
		"async":      "非同期",
		"await":      "待機",
		"break":      "抜ける",
		"case":       "場合",
		"catch":      "捕捉",
		"class":      "クラス",
		"const":      "定数",
		"continue":   "続行",
		"default":    "既定",
		"delete":     "削除",
		"do":         "実行",
		"else":       "他",
		"enum":       "列挙",
		"export":     "公開",
		"extends":    "継承",
		"false":      "偽",
		"finally":    "最終",
		"for":        "繰返",
		"function":   "関数",
		"if":         "もし",
		"implements": "実装",
		"import":     "取込",
		"in":         "内",
		"instanceof": "型判定",
		"interface":  "接口",
		"let":        "変数",
		"new":        "新規",
		"null":       "無",
		"return":     "返す",
		"static":     "静的",
		"switch":     "分岐",
		"this":       "自身",
		"throw":      "投げる",
		"true":       "真",
		"try":        "試行",
		"typeof":     "型取得",
		"undefined":  "未定義",
		"var":        "変数宣言",
		"void":       "空",
		"while":      "間",
		"yield":      "産出",
	},
	"zh": {
		"abstract":   "抽象",
		"async":      "异步",
		"await":      "等待",
		"break":      "中断",
		"case":       "情况",
		"catch":      "捕获",
		"class":      "类",
		"const":      "常量",
		"continue":   "继续",
		"default":    "默认",
		"delete":     "删除",
		"do":         "执行",
		"else":       "否则",
		"enum":       "枚举",
		"export":     "导出",
		"extends":    "继承",
		"false":      "假",
		"finally":    "最终",
		"for":        "循环",
		"function":   "函数",
		"if":         "如果",
		"implements": "实现",
		"import":     "导入",
		"in":         "在",
		"instanceof": "实例判断",
		"interface":  "接口",
		"let":        "变量",
		"new":        "新建",
		"null":       "空值",
		"return":     "返回",
		"static":     "静态",
		"switch":     "分支",
		"this":       "本身",
		"throw":      "抛出",
		"true":       "真",
		"try":        "尝试",
		"typeof":     "类型",
		"undefined":  "未定义",
		"var":        "变量声明",
		"void":       "无",
		"while":      "当",
		"yield":      "产出",
	},
}

// HasKeywordTable reports whether keyword translation is defined for the
// language.
func HasKeywordTable(lang LanguageCode) bool {
	_, ok := keywordTables[NormalizeLanguage(lang)]
	return ok
}

// protectedRegion matches string literals and comments in the rewritten
// code with one combined pattern covering both comment styles and all
// quoting styles. Keyword substitution never touches these regions.
var protectedRegion = regexp.MustCompile("(?s)" +
	`//[^\n]*` + "|" +
	`/\*.*?\*/` + "|" +
	`"(?:\\.|[^"\\\n])*"` + "|" +
	`'(?:\\.|[^'\\\n])*'` + "|" +
	"`[^`]*`")

// translateKeywords performs whole-word keyword substitution over the code
// regions of text, leaving keywords inside strings and comments untouched.
// It runs on already-rewritten text: it is lexical, not tree-guided, and
// must see final identifier spelling to correctly protect nested strings.
func translateKeywords(text string, source, target LanguageCode) string {
	pairs := keywordPairs(source, target)
	if len(pairs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	cursor := 0
	for _, loc := range protectedRegion.FindAllStringIndex(text, -1) {
		b.WriteString(replaceWholeWords(text[cursor:loc[0]], pairs))
		b.WriteString(text[loc[0]:loc[1]])
		cursor = loc[1]
	}
	b.WriteString(replaceWholeWords(text[cursor:], pairs))

	return b.String()
}

// keywordPairs composes the effective old→new keyword mapping for a
// language pair through the English pivot. Empty when neither side defines
// a table, or when source equals target.
func keywordPairs(source, target LanguageCode) map[string]string {
	src := NormalizeLanguage(source)
	tgt := NormalizeLanguage(target)
	if src == tgt {
		return nil
	}

	srcTable := keywordTables[src]
	tgtTable := keywordTables[tgt]
	if src != English && srcTable == nil {
		return nil
	}
	if tgt != English && tgtTable == nil {
		return nil
	}

	pairs := make(map[string]string)
	for en := range keywordTables["ja"] { // canonical keyword list
		old := en
		if src != English {
			old = srcTable[en]
		}
		repl := en
		if tgt != English {
			repl = tgtTable[en]
		}
		if old != "" && repl != "" && old != repl {
			pairs[old] = repl
		}
	}
	return pairs
}

// replaceWholeWords substitutes every maximal identifier-character run that
// matches a key in pairs. Runs are delimited by non-word characters, so
// keywords embedded in longer names are never touched.
func replaceWholeWords(text string, pairs map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		word := text[runStart:end]
		if repl, ok := pairs[word]; ok {
			b.WriteString(repl)
		} else {
			b.WriteString(word)
		}
		runStart = -1
	}

	for i, r := range text {
		if isWordRune(r) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
		b.WriteRune(r)
	}
	flush(len(text))

	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
