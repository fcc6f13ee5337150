package gen

import (
	"text/template"

	"modelgen/internal/naming"
	"modelgen/internal/schema"
)

// FuncMap exposes the naming and resolution helpers to templates.
func (r *Resolver) FuncMap() template.FuncMap {
	return template.FuncMap{
		"className":            naming.ClassName,
		"variableName":         naming.VariableName,
		"constantName":         naming.ConstantName,
		"typeText":             r.TypeText,
		"importsFor":           r.ImportsFor,
		"collectionImportsFor": r.CollectionImportsFor,
		"qualifiedNamespace":   r.QualifiedNamespace,
		"qualifiedImport":      r.QualifiedImportFor,
		"outputPath":           r.OutputPath,
		"properties":           properties,
	}
}

func properties(entity *schema.Node) []*schema.Node {
	return entity.Children(schema.KindProperty)
}
