/*
Package definition loads enumeration types from declarative YAML documents.

A document names the type, declares its attributes and lists its members.
Members carry their primary key under the primary attribute name; members
without one get an auto-assigned key:

	name: Currency
	primary_attr: code
	key_kind: string
	attributes:
	  - name: symbol
	    unique: true
	  - name
	  - name: plural_name
	    default: ""
	  - name: homepage
	    optional: true
	    format: uri
	members:
	  - code: USD
	    symbol: $
	    name: United States dollar
	  - code: EUR
	    symbol: €
	    name: Euro

A file may hold several documents separated by "---". Loading goes through a
Set, which keeps every built type by name:

	set := definition.NewSet(logger)
	if err := set.LoadPaths("enums/"); err != nil {
	    return err
	}
	currency, _ := set.Type("Currency")
	usd, err := currency.Get("USD")

Members are constructed exactly as with Type.New, so any duplicate key,
duplicate unique value, unknown or missing attribute aborts the load with
the corresponding error from the errors package.
*/
package definition
