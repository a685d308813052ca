package service

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{a}}, {{a.b}} and {{a.b.c}} with optional
// inner whitespace. Deeper paths are not matched and stay literal.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*){0,2})\s*\}\}`)

// TemplateContext is the nested lookup structure placeholders resolve
// against. Values are either string leaves or nested TemplateContext maps.
type TemplateContext map[string]interface{}

// RenderTemplate substitutes {{a.b.c}}-style placeholders in tpl with
// values from ctx. Placeholders whose path is unknown, or whose path stops
// at a nested map instead of a string leaf, are left literal.
func RenderTemplate(tpl string, ctx TemplateContext) string {
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		path := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := resolvePath(ctx, strings.Split(path, ".")); ok {
			return value
		}
		return match
	})
}

// resolvePath walks the dotted path through nested maps to a string leaf
func resolvePath(ctx TemplateContext, parts []string) (string, bool) {
	current := interface{}(ctx)
	for _, part := range parts {
		node, ok := current.(TemplateContext)
		if !ok {
			// allow plain map literals as nesting too
			plain, okPlain := current.(map[string]interface{})
			if !okPlain {
				return "", false
			}
			node = TemplateContext(plain)
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}

	leaf, ok := current.(string)
	return leaf, ok
}

// TemplateVariables lists the distinct placeholder paths used in tpl, in
// order of first appearance. Used by the template editor to show which
// variables a template depends on.
func TemplateVariables(tpl string) []string {
	seen := make(map[string]bool)
	var vars []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			vars = append(vars, match[1])
		}
	}
	return vars
}
