/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum_test

import (
	"fmt"

	"github.com/suparena/dataenum"
	"github.com/suparena/dataenum/errors"
)

func Example() {
	currency := dataenum.MustNewType("Currency",
		dataenum.WithKeyKind(dataenum.KindString),
		dataenum.WithAttributes(
			dataenum.Attr("symbol").AsUnique(),
			dataenum.Attr("name"),
		))

	currency.MustNew("USD", dataenum.Values{"symbol": "$", "name": "United States dollar"})
	currency.MustNew("EUR", dataenum.Values{"symbol": "€", "name": "Euro"})

	_, err := currency.New("CAD", dataenum.Values{"symbol": "$", "name": "Canadian dollar"})
	fmt.Println(errors.IsDuplicateSecondaryKey(err))

	eur, _ := currency.GetBy("symbol", "€")
	fmt.Printf("%s %#v\n", eur, eur)
	// Output:
	// true
	// EUR Currency("EUR", symbol="€", name="Euro")
}

func ExampleType_Get() {
	door := dataenum.MustNewType("Door", dataenum.WithAttributes(dataenum.Attr("description")))
	door.MustNew(1, dataenum.Values{"description": "Door #1"})

	d1, _ := door.Get(1)
	n, _ := d1.Int()
	fmt.Println(n, d1.MustAttr("description"))

	d2, err := door.Get(2, dataenum.WithDefault(nil))
	fmt.Println(d2 == nil, err)

	_, err = door.Get(2)
	fmt.Println(err)
	// Output:
	// 1 Door #1
	// true <nil>
	// Door with key 2 does not exist
}
