// Package loader turns the project's YAML document into stored records. It
// deserializes the document, expands the deployment-template sugar, then
// walks the resulting mapping invoking the registered factory of every key
// that names a known directive.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/theandrelima/terraframe/internal/ctxlog"
	"github.com/theandrelima/terraframe/internal/model"
	"gopkg.in/yaml.v3"
)

// Top-level sugar keys consumed before the directive walk.
const (
	deploymentTemplatesKey = "deployment_templates"
	deploymentTemplateKey  = "deployment_template"
)

// Parse deserializes a YAML document into a nested mapping.
func Parse(r io.Reader) (map[string]any, error) {
	doc := map[string]any{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding YAML document: %w", err)
	}
	return doc, nil
}

// ExpandDeploymentTemplates rewrites the document in place: every deployment
// entry naming a deployment_template is merged with (and overridden by) the
// shared template of that name from the deployment_templates section, and the
// per-entry key is removed. After all entries are expanded the
// deployment_templates section itself is discarded.
func ExpandDeploymentTemplates(doc map[string]any) error {
	templates, _ := doc[deploymentTemplatesKey].(map[string]any)

	deployments, _ := doc[model.DirectiveDeployments].([]any)
	for _, elem := range deployments {
		entry, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		nameVal, ok := entry[deploymentTemplateKey]
		if !ok {
			continue
		}
		delete(entry, deploymentTemplateKey)

		name, _ := nameVal.(string)
		tmpl, ok := templates[name].(map[string]any)
		if !ok {
			return fmt.Errorf("deployment %v references unknown deployment template %q", entry["name"], name)
		}
		for k, v := range tmpl {
			entry[k] = v
		}
	}

	delete(doc, deploymentTemplatesKey)
	return nil
}

// Walk visits the registry's directives in registration order and invokes
// each one's factory on the matching key's value. List-valued matches are
// recursed into one level first: each mapping element is itself walked for
// nested directives before the outer factory runs, which is how child modules
// declared inside deployment entries get constructed before the deployments
// that reference them.
func Walk(ctx context.Context, p *model.Project, reg *model.Registry, doc map[string]any) error {
	logger := ctxlog.FromContext(ctx)

	for _, directive := range reg.Directives() {
		payload, ok := doc[directive]
		if !ok {
			continue
		}

		if list, ok := payload.([]any); ok {
			for _, elem := range list {
				nested, ok := elem.(map[string]any)
				if !ok {
					continue
				}
				if err := Walk(ctx, p, reg, nested); err != nil {
					return err
				}
			}
		}

		logger.Debug("Constructing records for directive.", "directive", directive)
		factory, ok := reg.Factory(directive)
		if !ok {
			continue
		}
		if err := factory(ctx, p, payload); err != nil {
			return err
		}
	}
	return nil
}

// Load is the one-call form: parse, expand, walk.
func Load(ctx context.Context, p *model.Project, reg *model.Registry, r io.Reader) error {
	doc, err := Parse(r)
	if err != nil {
		return err
	}
	if err := ExpandDeploymentTemplates(doc); err != nil {
		return err
	}
	return Walk(ctx, p, reg, doc)
}
