package analyzer

import "regexp"

// includePattern captures the path inside #include <...> or #include "...".
var includePattern = regexp.MustCompile(`#include\s*[<"]([^>"]*)[>"]`)

// funcDefPattern is a loose shape match for function definitions:
// return-type, name, parameter list, opening brace.
var funcDefPattern = regexp.MustCompile(`\w+\s+\w+\s*\([^)]*\)\s*{`)

// errorPatterns are the generic error-handling idioms counted per analysis.
var errorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`if\s*\([^)]*!=\s*0\)`),    // return value checking
	regexp.MustCompile(`if\s*\([^)]*<\s*0\)`),     // negative return checking
	regexp.MustCompile(`if\s*\([^)]*==\s*NULL\)`), // NULL pointer checking
	regexp.MustCompile(`return\s*-?\d+;`),         // error return codes
}

// archPatterns are the architecture idiom categories. Order is fixed so
// the recorded pattern list is deterministic.
var archPatterns = []struct {
	re       *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`typedef\s+struct`), "struct_definitions"},
	{regexp.MustCompile(`static\s+\w+`), "static_variables"},
	{regexp.MustCompile(`void\s+\w+\s*\([^)]*\)\s*{`), "function_definitions"},
	{regexp.MustCompile(`#define\s+\w+`), "macro_definitions"},
	{regexp.MustCompile(`enum\s+\w+`), "enum_definitions"},
}
