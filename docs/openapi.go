package docs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	apierrors "github.com/Aidin1998/walletapi/pkg/errors"
)

// Operation documents one route.
type Operation struct {
	Method      string
	Path        string // OpenAPI template, e.g. /users/{id}
	OperationID string
	Summary     string
	Description string
	Tag         string

	// PathParams and QueryParams are struct values whose uri and form tags
	// name the parameters. Body and Response are example values of the
	// request and success response types.
	PathParams  any
	QueryParams any
	Body        any
	Response    any

	Status       int    // success status, defaults to 200
	ResponseType string // success content type, defaults to application/json
	ResponseDesc string
	BodyDesc     string

	// DecodeErrors lists the 400 response when set.
	DecodeErrors bool
}

// Build derives the OpenAPI document from the operations. Extra values are
// registered as component schemas even if no operation references them.
func Build(info Info, ops []Operation, extra ...any) (*openapi3.T, error) {
	reg := newSchemaRegistry()
	paths := openapi3.NewPaths()

	problemRef, err := reg.ref(apierrors.ProblemDetails{})
	if err != nil {
		return nil, err
	}

	for _, o := range ops {
		op, err := buildOperation(reg, o, problemRef)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", o.Method, o.Path, err)
		}

		item := paths.Value(o.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			paths.Set(o.Path, item)
		}
		if item.GetOperation(o.Method) != nil {
			return nil, fmt.Errorf("%s %s: duplicate operation", o.Method, o.Path)
		}
		item.SetOperation(o.Method, op)
	}

	for _, v := range extra {
		if _, err := reg.ref(v); err != nil {
			return nil, err
		}
	}

	tags := make(openapi3.Tags, 0, len(Tags))
	for _, t := range Tags {
		tags = append(tags, &openapi3.Tag{Name: t.Name, Description: t.Description})
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Tags:       tags,
		Paths:      paths,
		Components: &openapi3.Components{Schemas: reg.schemas},
	}, nil
}

func buildOperation(reg *schemaRegistry, o Operation, problemRef *openapi3.SchemaRef) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.OperationID = o.OperationID
	op.Summary = o.Summary
	op.Description = o.Description
	if o.Tag != "" {
		op.Tags = []string{o.Tag}
	}

	pathParams, err := parameters(o.PathParams, openapi3.ParameterInPath, "uri")
	if err != nil {
		return nil, err
	}
	queryParams, err := parameters(o.QueryParams, openapi3.ParameterInQuery, "form")
	if err != nil {
		return nil, err
	}
	op.Parameters = append(pathParams, queryParams...)

	if o.Body != nil {
		bodyRef, err := reg.ref(o.Body)
		if err != nil {
			return nil, err
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription(o.BodyDesc).
				WithRequired(true).
				WithJSONSchemaRef(bodyRef),
		}
	}

	status := o.Status
	if status == 0 {
		status = http.StatusOK
	}
	desc := o.ResponseDesc
	if desc == "" {
		desc = http.StatusText(status)
	}

	success := openapi3.NewResponse().WithDescription(desc)
	switch {
	case o.ResponseType != "" && o.ResponseType != "application/json":
		success.WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{o.ResponseType}))
	case o.Response != nil:
		respRef, err := reg.ref(o.Response)
		if err != nil {
			return nil, err
		}
		success.WithJSONSchemaRef(respRef)
	}

	op.Responses = &openapi3.Responses{}
	op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: success})
	if o.DecodeErrors {
		bad := openapi3.NewResponse().
			WithDescription("Malformed path parameter, query parameter or request body").
			WithContent(openapi3.NewContentWithSchemaRef(problemRef, []string{"application/problem+json"}))
		op.Responses.Set(strconv.Itoa(http.StatusBadRequest), &openapi3.ResponseRef{Value: bad})
	}
	return op, nil
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(doc *openapi3.T) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// MarshalYAML renders the document as YAML by way of its JSON form, so both
// renderings carry exactly the same content.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
