package coerce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamePolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, "operationId", p.WireName("Operation", "operation_id"))
	assert.Equal(t, "openIdConnectUrl", p.WireName("SecurityScheme", "open_id_connect_url"))
	assert.Equal(t, "in", p.WireName("OperationParameter", "in_"))

	q := p.WithOverride("RefValue", "ref", "$ref")
	assert.Equal(t, "$ref", q.WireName("RefValue", "ref"))
	assert.Equal(t, "ref", q.WireName("PathItem", "ref"))
	assert.Empty(t, p.Overrides, "WithOverride must not modify its receiver")

	custom := NamePolicy{Transform: strings.ToUpper}
	assert.Equal(t, "TOKEN_URL", custom.WireName("OAuthFlow", "token_url"))

	assert.Equal(t, "token_url", IdentityPolicy().WireName("OAuthFlow", "token_url"))
}
