// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

// ComponentsPrefix is the fixed head of every local component reference.
const ComponentsPrefix = "#/components/"

// OAS 3.0 component reference prefixes
const (
	RefPrefixSchemas         = ComponentsPrefix + "schemas/"
	RefPrefixLinks           = ComponentsPrefix + "links/"
	RefPrefixParameters      = ComponentsPrefix + "parameters/"
	RefPrefixResponses       = ComponentsPrefix + "responses/"
	RefPrefixHeaders         = ComponentsPrefix + "headers/"
	RefPrefixExamples        = ComponentsPrefix + "examples/"
	RefPrefixRequestBodies   = ComponentsPrefix + "requestBodies/"
	RefPrefixSecuritySchemes = ComponentsPrefix + "securitySchemes/"
	RefPrefixCallbacks       = ComponentsPrefix + "callbacks/"
)

// ComponentRef builds "#/components/{collection}/{name}".
func ComponentRef(collection, name string) string {
	return ComponentsPrefix + collection + "/" + name
}

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}
