// Copyright © 2018 One Concern

// Package manifest renders kubernetes Deployment manifests for our GKE workers.
//
// Manifests are static templates: rendering only substitutes a handful of values
// (project, image version, namespace). The rendered output is not validated,
// unless explicitly requested with Validate.
package manifest

import (
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/oneconcern/cloudops/pkg/errors"
)

const (
	// GCSIndex deploys the workers indexing GCS buckets into Spanner
	GCSIndex = "gcs-index"

	// PopulateBucket deploys the workers populating GCS buckets with randomly named objects
	PopulateBucket = "populate-bucket"

	// DefaultImageVersion is the image tag deployed when none is specified
	DefaultImageVersion = "latest"

	// DefaultNamespace is the namespace of the populate-bucket deployment when none is specified
	DefaultNamespace = "populate-bucket"
)

var (
	// ErrUnknownTemplate indicates that no manifest template is registered with this name
	ErrUnknownTemplate = errors.New("unknown manifest template")

	// ErrMissingValue indicates that a value required by the template was not provided
	ErrMissingValue = errors.New("missing template value")

	// ErrInvalidManifest indicates that a rendered manifest is not a valid Deployment
	ErrInvalidManifest = errors.New("invalid deployment manifest")
)

//go:embed templates/*.yaml
var templatesFS embed.FS

// Values substituted in manifest templates
type Values struct {
	Project      string
	ImageVersion string
	Namespace    string
}

// WithDefaults fills unset values with their default
func (v Values) WithDefaults() Values {
	if v.ImageVersion == "" {
		v.ImageVersion = DefaultImageVersion
	}
	if v.Namespace == "" {
		v.Namespace = DefaultNamespace
	}
	return v
}

// Template describes a registered manifest template
type Template struct {
	Name        string
	Description string

	tpl *template.Template
}

var registry = map[string]*Template{
	GCSIndex: {
		Name:        GCSIndex,
		Description: "Create k8s jobs to index GCS buckets",
	},
	PopulateBucket: {
		Name:        PopulateBucket,
		Description: "Create k8s jobs to populate GCS buckets with randomly named objects",
	},
}

func init() {
	for name, t := range registry {
		t.tpl = template.Must(
			template.New(name + ".yaml").
				Funcs(sprig.TxtFuncMap()).
				Option("missingkey=error").
				ParseFS(templatesFS, "templates/"+name+".yaml"),
		)
	}
}

// Get a registered template by name
func Get(name string) (*Template, error) {
	t, ok := registry[name]
	if !ok {
		return nil, ErrUnknownTemplate.Wrap(fmt.Errorf("%q", name))
	}
	return t, nil
}

// Render writes the manifest to w, substituting values
func (t *Template) Render(values Values, w io.Writer) error {
	if values.Project == "" {
		return ErrMissingValue.Wrap(fmt.Errorf("a project is required to render %s", t.Name))
	}
	return t.tpl.Execute(w, values)
}

// Render writes the manifest of the named template to w
func Render(name string, values Values, w io.Writer) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	return t.Render(values, w)
}
