package uischema

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-framegen/pkg/params"
)

const orderExtensionKey = "x-order"

// Convert maps a template's parameter declarations onto an OpenAPI object
// schema so form-generation layers can build input controls from a format
// they already understand, without knowing the placeholder DSL. Property
// order is preserved through the x-order extension since JSON objects carry
// none of their own.
func Convert(schema params.Schema) *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	object.Properties = make(openapi3.Schemas, schema.Len())

	for i, decl := range schema.Declarations() {
		property := propertyFor(decl)
		property.Title = decl.Label
		property.Default = decl.Default
		if property.Extensions == nil {
			property.Extensions = make(map[string]any, 1)
		}
		property.Extensions[orderExtensionKey] = i
		object.Properties[decl.Name] = property.NewRef()
	}

	return object
}

func propertyFor(decl params.Declaration) *openapi3.Schema {
	switch decl.Type {
	case params.TypeNumber:
		if _, isInt := decl.Default.(int); isInt {
			return openapi3.NewIntegerSchema()
		}
		return openapi3.NewFloat64Schema()
	case params.TypeBool:
		return openapi3.NewBoolSchema()
	case params.TypeColor:
		property := openapi3.NewStringSchema()
		property.Format = "color"
		return property
	default:
		return openapi3.NewStringSchema()
	}
}
