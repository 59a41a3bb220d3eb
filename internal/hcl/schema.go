package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// fileRoot describes all possible top-level content of a file. It is only used
// to derive rootSchema; blocks are decoded one at a time to keep their order.
type fileRoot struct {
	Namespaces []string     `hcl:"namespaces,optional"`
	Defaults   []*attrBlock `hcl:"defaults,block"`
	Components []*declBlock `hcl:"component,block"`
	Calls      []*declBlock `hcl:"call,block"`
}

// declBlock is the schema shared by `component` and `call` blocks.
type declBlock struct {
	Symbol string `hcl:"symbol,label"`
	Name   string `hcl:"name,label"`
}

// declBody is the content of a `component` or `call` block.
type declBody struct {
	Strict     *bool      `hcl:"strict,optional"`
	Namespaces []string   `hcl:"namespaces,optional"`
	Arguments  *attrBlock `hcl:"arguments,block"`
}

// attrBlock holds a block made only of free-form attributes.
type attrBlock struct {
	Body hcl.Body `hcl:",remain"`
}

var rootSchema, _ = gohcl.ImpliedBodySchema(&fileRoot{})
