package harness

import (
	"github.com/roach88/idlink/internal/bidirectional"
	"github.com/roach88/idlink/internal/phantom"
	"github.com/roach88/idlink/internal/unidirectional"
)

// Variant names.
const (
	VariantUnidirectional = "unidirectional"
	VariantBidirectional  = "bidirectional"
	VariantPhantom        = "phantom"
)

// identity is the runtime surface every int64-backed identifier shares.
// Interface values compare equal only when their dynamic types match, so
// == on two identity values is the same test the compiler applies.
type identity interface {
	Raw() int64
	Hash() uint64
	String() string
	GoString() string
}

type kind struct {
	// id builds the kind's identifier directly.
	id func(raw int64) identity
	// viaEntity builds an entity around the identifier and reads it back.
	viaEntity func(raw int64) identity
}

var variants = map[string]map[string]kind{
	VariantUnidirectional: {
		"Foo": {
			id: func(raw int64) identity { return unidirectional.NewFooID(raw) },
			viaEntity: func(raw int64) identity {
				return unidirectional.NewFoo(unidirectional.NewFooID(raw), "foo").ID()
			},
		},
		"Bar": {
			id: func(raw int64) identity { return unidirectional.NewBarID(raw) },
			viaEntity: func(raw int64) identity {
				return unidirectional.NewBar(unidirectional.NewBarID(raw), "bar").ID()
			},
		},
		// Baz borrows Foo's identifier type.
		"Baz": {
			id: func(raw int64) identity { return unidirectional.NewFooID(raw) },
			viaEntity: func(raw int64) identity {
				return unidirectional.NewBaz(unidirectional.NewFooID(raw)).ID()
			},
		},
	},
	VariantBidirectional: {
		"Foo": {
			id: func(raw int64) identity { return bidirectional.NewFooID(raw) },
			viaEntity: func(raw int64) identity {
				return bidirectional.NewFoo(bidirectional.NewFooID(raw), "foo").ID()
			},
		},
		"Bar": {
			id: func(raw int64) identity { return bidirectional.NewBarID(raw) },
			viaEntity: func(raw int64) identity {
				return bidirectional.NewBar(bidirectional.NewBarID(raw), "bar").ID()
			},
		},
	},
	VariantPhantom: {
		"Foo": {
			id: func(raw int64) identity { return phantom.New[phantom.Foo](raw) },
			viaEntity: func(raw int64) identity {
				return phantom.NewFoo(phantom.New[phantom.Foo](raw), "foo").ID()
			},
		},
		"Bar": {
			id: func(raw int64) identity { return phantom.New[phantom.Bar](raw) },
			viaEntity: func(raw int64) identity {
				return phantom.NewBar(phantom.New[phantom.Bar](raw), "bar").ID()
			},
		},
	},
}
