// Package model defines the data structures for fixture corpus generation.
package model

// Path represents a file system path, relative to the corpus root unless
// stated otherwise.
type Path string

// Language identifies a corpus target language. Its value doubles as the
// per-language directory name at the corpus root.
type Language string

// Corpus languages.
const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
	LangGo         Language = "go"
)

// AllLanguages lists every language the corpus can carry, in directory order.
func AllLanguages() []Language {
	return []Language{LangPython, LangJavaScript, LangTypeScript, LangJava, LangCPP, LangGo}
}

// Dir returns the per-language directory name under the corpus root.
func (l Language) Dir() string {
	return string(l)
}

// Ext returns the source file extension for the language, without the dot.
func (l Language) Ext() string {
	switch l {
	case LangPython:
		return "py"
	case LangJavaScript:
		return "js"
	case LangTypeScript:
		return "ts"
	case LangJava:
		return "java"
	case LangCPP:
		return "cpp"
	case LangGo:
		return "go"
	}

	return ""
}

// Valid reports whether the language is one of the corpus languages.
func (l Language) Valid() bool {
	for _, known := range AllLanguages() {
		if l == known {
			return true
		}
	}

	return false
}

// ChangeKind labels the test-case category a commit demonstrates.
type ChangeKind string

// Change categories the corpus covers.
const (
	ChangeBody       ChangeKind = "body"
	ChangeSignature  ChangeKind = "signature"
	ChangeDocstring  ChangeKind = "docstring"
	ChangeRename     ChangeKind = "rename"
	ChangeWhitespace ChangeKind = "whitespace"
	ChangeFileMove   ChangeKind = "file-move"
	ChangeFileDelete ChangeKind = "file-delete"
	ChangeRefactor   ChangeKind = "refactor"
	ChangeNested     ChangeKind = "nested"
	ChangeHierarchy  ChangeKind = "hierarchy"

	// ChangeLanguageFeatures covers language-specific syntax: decorators,
	// generators, context managers, properties, lambdas.
	ChangeLanguageFeatures ChangeKind = "language-features"
	ChangeBaseline   ChangeKind = "baseline"
)
