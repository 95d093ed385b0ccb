package store

import "github.com/invopop/jsonschema"

// FileSchema returns the JSON schema for the instruction template file
// format. Frontends can use it to validate user-supplied template files
// before handing them to a Store.
func FileSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&TemplateFile{})
}
