package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkPetstore(t *testing.T, input walkSchemasInput) walkSchemasOutput {
	t.Helper()
	input.Spec = specInput{File: "../../testdata/petstore.yaml"}
	res, output, err := handleWalkSchemas(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)
	return output
}

func TestWalkSchemasTool_All(t *testing.T) {
	output := walkPetstore(t, walkSchemasInput{})

	assert.Equal(t, 17, output.Total)
	assert.Equal(t, 17, output.Matched)
	assert.Equal(t, 17, output.Returned)

	first := output.Summaries[0]
	assert.Equal(t, "components.schemas.Error", first.Path)
	assert.Equal(t, "ObjectValue", first.Variant)
	assert.Equal(t, "object", first.Type)
	assert.True(t, first.IsComponent)
	assert.Equal(t, "Error", first.Owner)
	assert.Equal(t, 2, first.PropertyCount)
	assert.Equal(t, []string{"code", "message"}, first.Required)

	items := output.Summaries[8]
	assert.Equal(t, "components.schemas.Pets.items", items.Path)
	assert.Equal(t, "RefValue", items.Variant)
	assert.Equal(t, "#/components/schemas/Pet", items.Ref)
	assert.Equal(t, "Pets", items.Owner)
	assert.False(t, items.IsComponent)

	last := output.Summaries[16]
	assert.Empty(t, last.Owner, "path schemas have no owning component")
}

func TestWalkSchemasTool_Filters(t *testing.T) {
	tests := []struct {
		name    string
		input   walkSchemasInput
		matched int
	}{
		{"variant", walkSchemasInput{Variant: "refvalue"}, 6},
		{"component", walkSchemasInput{Component: true}, 3},
		{"owner exact", walkSchemasInput{Name: "Pet"}, 4},
		{"owner glob", walkSchemasInput{Name: "Pet*"}, 6},
		{"path prefix", walkSchemasInput{PathPrefix: `paths["/pets/{petId}"]`}, 3},
		{"combined", walkSchemasInput{Name: "Error", Variant: "IntegerValue"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := walkPetstore(t, tt.input)
			assert.Equal(t, 17, output.Total)
			assert.Equal(t, tt.matched, output.Matched)
		})
	}
}

func TestWalkSchemasTool_GroupBy(t *testing.T) {
	t.Run("variant", func(t *testing.T) {
		output := walkPetstore(t, walkSchemasInput{GroupBy: "variant"})
		assert.Equal(t, []groupCount{
			{"RefValue", 6},
			{"StringValue", 5},
			{"IntegerValue", 3},
			{"ObjectValue", 2},
			{"ArrayValue", 1},
		}, output.Groups)
		assert.Empty(t, output.Summaries)
	})

	t.Run("location", func(t *testing.T) {
		output := walkPetstore(t, walkSchemasInput{GroupBy: "location"})
		assert.Equal(t, []groupCount{{"components.schemas", 9}, {"paths", 8}}, output.Groups)
	})
}

func TestWalkSchemasTool_Pagination(t *testing.T) {
	output := walkPetstore(t, walkSchemasInput{Offset: 15, Limit: 5})
	assert.Equal(t, 17, output.Matched)
	assert.Equal(t, 2, output.Returned)
}

func TestWalkSchemasTool_InvalidInput(t *testing.T) {
	for _, input := range []walkSchemasInput{
		{Spec: specInput{Content: testSpecYAML}, GroupBy: "type"},
		{Spec: specInput{Content: testSpecYAML}, Name: "[bad"},
		{},
	} {
		res, _, err := handleWalkSchemas(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	}
}

func TestSchemaLocation(t *testing.T) {
	assert.Equal(t, "components.schemas", schemaLocation("components.schemas.Pet.properties.id"))
	assert.Equal(t, "components.requestBodies", schemaLocation(`components.requestBodies.NewBook.content["application/json"].schema`))
	assert.Equal(t, "paths", schemaLocation(`paths["/pets"].get.parameters[0].schema`))
}

func TestWithin(t *testing.T) {
	assert.True(t, within("components.schemas.Pet", "components.schemas.Pet"))
	assert.True(t, within("components.schemas.Pet.items", "components.schemas.Pet"))
	assert.False(t, within("components.schemas.Pets", "components.schemas.Pet"))
}
