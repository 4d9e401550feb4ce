package manifest

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	"sigs.k8s.io/yaml"
)

// Validate decodes a rendered manifest as a kubernetes apps/v1 Deployment.
//
// Unknown fields are rejected.
func Validate(data []byte) (*appsv1.Deployment, error) {
	var deployment appsv1.Deployment
	if err := yaml.UnmarshalStrict(data, &deployment); err != nil {
		return nil, ErrInvalidManifest.Wrap(err)
	}

	if deployment.APIVersion != appsv1.SchemeGroupVersion.String() || deployment.Kind != "Deployment" {
		return nil, ErrInvalidManifest.Wrap(
			fmt.Errorf("expected apps/v1 Deployment, got %s %s", deployment.APIVersion, deployment.Kind))
	}
	if deployment.Name == "" {
		return nil, ErrInvalidManifest.Wrap(fmt.Errorf("deployment has no name"))
	}
	if errs := validation.IsDNS1123Subdomain(deployment.Name); len(errs) > 0 {
		return nil, ErrInvalidManifest.Wrap(fmt.Errorf("invalid deployment name %q: %s", deployment.Name, strings.Join(errs, ", ")))
	}
	if deployment.Namespace != "" {
		if errs := validation.IsDNS1123Label(deployment.Namespace); len(errs) > 0 {
			return nil, ErrInvalidManifest.Wrap(fmt.Errorf("invalid namespace %q: %s", deployment.Namespace, strings.Join(errs, ", ")))
		}
	}
	containers := deployment.Spec.Template.Spec.Containers
	if len(containers) == 0 {
		return nil, ErrInvalidManifest.Wrap(fmt.Errorf("deployment %s has no container", deployment.Name))
	}
	for _, c := range containers {
		if c.Image == "" {
			return nil, ErrInvalidManifest.Wrap(fmt.Errorf("container %s in deployment %s has no image", c.Name, deployment.Name))
		}
	}
	return &deployment, nil
}
