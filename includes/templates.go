package includes

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// varsFile is an optional YAML file in the include directory whose keys
// become template variables for the page shell.
const varsFile = "vars.yaml"

// LoadOverrides re-parses every *.tpl file from dir on top of the
// built-in templates, so users can restyle the page without rebuilding.
// The template name is the file name without extension, e.g. a file
// named "html:entry.tpl" replaces the entry template.
func LoadOverrides(
	dir string,
	templates *template.Template,
) (*template.Template, map[string]interface{}, error) {
	vars := map[string]interface{}{}

	if dir == "" {
		return templates, vars, nil
	}

	paths, err := doublestar.FilepathGlob(filepath.Join(dir, "*.tpl"))
	if err != nil {
		return nil, nil, karma.Format(
			err,
			"unable to glob template overrides in %q",
			dir,
		)
	}

	for _, path := range paths {
		templates, err = loadTemplate(path, templates)
		if err != nil {
			return nil, nil, err
		}
	}

	vars, err = loadVars(filepath.Join(dir, varsFile))
	if err != nil {
		return nil, nil, err
	}

	return templates, vars, nil
}

func loadTemplate(
	path string,
	templates *template.Template,
) (*template.Template, error) {
	var (
		base  = filepath.Base(path)
		name  = strings.TrimSuffix(base, filepath.Ext(base))
		facts = karma.Describe("name", name)
	)

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, facts.Format(
			err,
			"unable to read template file",
		)
	}

	body = bytes.ReplaceAll(
		body,
		[]byte("\r\n"),
		[]byte("\n"),
	)

	log.Tracef(facts, "overriding template %q", name)

	templates, err = templates.New(name).Parse(string(body))
	if err != nil {
		return nil, facts.Format(
			err,
			"unable to parse template",
		)
	}

	return templates, nil
}

func loadVars(path string) (map[string]interface{}, error) {
	vars := map[string]interface{}{}

	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}

		return nil, karma.Format(err, "unable to read vars file %q", path)
	}

	err = yaml.Unmarshal(body, &vars)
	if err != nil {
		return nil, karma.Describe("path", path).Format(
			err,
			"unable to unmarshal template vars",
		)
	}

	return vars, nil
}
