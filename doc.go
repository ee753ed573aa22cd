/*
Package dataenum provides enumerations whose members carry immutable data.

Each enumeration Type declares an ordered list of data attributes, some of
which may be unique. Every member has a primary key, given explicitly or
auto-assigned, and is registered with its type the moment it is constructed:

	var Currency = dataenum.MustNewType("Currency",
	    dataenum.WithPrimaryAttr("code"),
	    dataenum.WithKeyKind(dataenum.KindString),
	    dataenum.WithAttributes(
	        dataenum.Attr("symbol").AsUnique(),
	        dataenum.Attr("name"),
	        dataenum.Attr("homepage").Optional().WithFormat("uri"),
	    ))

	var USD = Currency.MustNew("USD", dataenum.Values{
	    "symbol": "$",
	    "name":   "United States dollar",
	})

Construction fails without side effects when the key is already used, an
attribute is unknown or missing, or a unique value is already taken. There is
no separate register or finalize step.

Lookups go by primary key or by a single unique attribute, with an optional
default:

	usd, err := Currency.Get("USD")
	usd, err = Currency.GetBy("symbol", "$")
	m, err := Currency.Get("XXX", dataenum.WithDefault(nil)) // nil, nil

Members compare by identity, print as their key, and encode as their key in
JSON, YAML and DynamoDB attribute values. Errors are defined in the errors
subpackage; enumeration types can also be declared in YAML, see the
definition subpackage.

Member construction is expected to happen during initialization. The
registry is safe for concurrent use, but members are never removed.
*/
package dataenum
