package docs

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

const componentPrefix = "#/components/schemas/"

var timeType = reflect.TypeOf(time.Time{})

// schemaRegistry collects named component schemas as operations reference them.
type schemaRegistry struct {
	schemas openapi3.Schemas
}

func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{schemas: openapi3.Schemas{}}
}

// ref returns a schema reference for v. Named struct types are registered as
// components; slices become arrays of their element reference.
func (r *schemaRegistry) ref(v any) (*openapi3.SchemaRef, error) {
	return r.refType(reflect.TypeOf(v))
}

func (r *schemaRegistry) refType(t reflect.Type) (*openapi3.SchemaRef, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		items, err := r.refType(t.Elem())
		if err != nil {
			return nil, err
		}
		arr := openapi3.NewArraySchema()
		arr.Items = items
		return openapi3.NewSchemaRef("", arr), nil
	}

	if t.Kind() != reflect.Struct || t.Name() == "" || t == timeType {
		return generate(t)
	}

	name := t.Name()
	s, ok := r.schemas[name]
	if !ok {
		var err error
		if s, err = generate(t); err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
		s.Value.Required = requiredFields(t)
		r.schemas[name] = s
	}
	// refs carry their resolved value
	return &openapi3.SchemaRef{Ref: componentPrefix + name, Value: s.Value}, nil
}

// requiredFields lists the JSON names of fields tagged binding:"required".
func requiredFields(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !slices.Contains(strings.Split(f.Tag.Get("binding"), ","), "required") {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

func generate(t reflect.Type) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(
		reflect.New(t).Elem().Interface(),
		nil,
		openapi3gen.SchemaCustomizer(customize),
	)
}

// customize applies the description and example struct tags.
func customize(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if d := tag.Get("description"); d != "" {
		schema.Description = d
	}
	if ex, ok := tag.Lookup("example"); ok {
		v, err := exampleValue(t, ex)
		if err != nil {
			return err
		}
		schema.Example = v
	}
	return nil
}

func exampleValue(t reflect.Type, raw string) (any, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(raw, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(raw, 64)
	case reflect.Bool:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}

// parameters builds one parameter per field of the struct behind v that
// carries the given binding tag (uri or form).
func parameters(v any, in, bindTag string) (openapi3.Parameters, error) {
	if v == nil {
		return nil, nil
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s parameters must be a struct, got %s", in, t)
	}

	var params openapi3.Parameters
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get(bindTag), ",")
		if name == "" || name == "-" {
			continue
		}

		schema, err := generate(f.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}

		var p *openapi3.Parameter
		switch in {
		case openapi3.ParameterInPath:
			p = openapi3.NewPathParameter(name)
		default:
			p = openapi3.NewQueryParameter(name)
		}
		p.Description = f.Tag.Get("description")
		p.Schema = schema
		params = append(params, &openapi3.ParameterRef{Value: p})
	}
	return params, nil
}
