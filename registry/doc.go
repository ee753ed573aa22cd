/*
Package registry holds the indexed member state behind every enumeration type.

A Registry keeps the values of one type in insertion order, indexed by primary
key and by each attribute declared unique:

	reg := registry.New[*Member]("Currency", "symbol")
	m, err := reg.Register(registry.Candidate[*Member]{
	    Key: "USD",
	    Validate: func(key any) ([]registry.Secondary, error) {
	        return []registry.Secondary{{Attr: "symbol", Value: "$"}}, nil
	    },
	    Build: func(key any) *Member { return &Member{key: key} },
	})

Registration checks the primary key, runs the candidate's validation, checks
every unique value and only then commits, all under one lock. A failed
registration leaves no trace. Values are never removed.

Catalog is a small named map for types loaded at runtime, such as those read
from definition files:

	types := registry.NewCatalog[*dataenum.Type]()
	types.MustDefine("Currency", currency)

Both are safe for concurrent use, though registrations are expected to happen
during initialization.
*/
package registry
