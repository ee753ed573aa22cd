/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dataenum/errors"
)

func seedCurrencies(t *testing.T) (*Type, map[string]*Member) {
	t.Helper()
	currency := newCurrency(t)
	members := map[string]*Member{}
	for _, c := range []struct{ code, symbol, name string }{
		{"USD", "$", "United States dollar"},
		{"EUR", "€", "Euro"},
		{"JPY", "¥", "Japanese yen"},
	} {
		members[c.code] = currency.MustNew(c.code, Values{"symbol": c.symbol, "name": c.name})
	}
	return currency, members
}

func TestGet_RoundTripIdentity(t *testing.T) {
	currency, members := seedCurrencies(t)
	for code, m := range members {
		got, err := currency.Get(code)
		require.NoError(t, err)
		assert.Same(t, m, got)

		// Lookups are repeatable and read-only.
		again, err := currency.Get(code)
		require.NoError(t, err)
		assert.Same(t, got, again)
	}
	assert.Equal(t, 3, currency.Len())
}

func TestGet_DefaultLaw(t *testing.T) {
	currency, members := seedCurrencies(t)
	usd := members["USD"]

	got, err := currency.Get("EUR", WithDefault(usd))
	require.NoError(t, err)
	assert.Same(t, members["EUR"], got, "present keys ignore the default")

	got, err = currency.Get("AAA", WithDefault(usd))
	require.NoError(t, err)
	assert.Same(t, usd, got)

	got, err = currency.Get("AAA", WithDefault(nil))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = currency.GetBy("symbol", "₿", WithDefault(usd))
	require.NoError(t, err)
	assert.Same(t, usd, got)
}

func TestGet_AbsenceLaw(t *testing.T) {
	currency, _ := seedCurrencies(t)

	tests := []struct {
		name string
		key  any
	}{
		{name: "unknown code", key: "AAA"},
		{name: "wrong kind", key: 7},
		{name: "unsupported key type", key: 1.5},
		{name: "unhashable key", key: []string{"USD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currency.Get(tt.key)
			assert.Nil(t, got)
			var missing *errors.MemberDoesNotExistError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "Currency", missing.Type)
		})
	}
}

func TestGetBy_UniqueAttribute(t *testing.T) {
	currency, members := seedCurrencies(t)

	got, err := currency.GetBy("symbol", "€")
	require.NoError(t, err)
	assert.Same(t, members["EUR"], got)

	_, err = currency.GetBy("symbol", "₿")
	var missing *errors.MemberDoesNotExistError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "symbol", missing.Attr)

	got, err = currency.GetBy(DefaultPrimaryAttr, "JPY")
	require.NoError(t, err)
	assert.Same(t, members["JPY"], got, "filtering on the primary attribute is a key lookup")
}

func TestGetBy_RejectsUndeclaredAndNonUnique(t *testing.T) {
	currency, members := seedCurrencies(t)

	_, err := currency.GetBy("three_letters", "USD")
	assert.True(t, errors.IsUnknownAttribute(err))
	assert.False(t, errors.IsNotUnique(err))

	_, err = currency.GetBy("name", "Euro", WithDefault(members["USD"]))
	assert.True(t, errors.IsNotUnique(err), "defaults never mask a bad filter")
	assert.True(t, errors.IsUnknownAttribute(err))
}

func TestGetBy_IntegerValuesNormalize(t *testing.T) {
	element := MustNewType("Element", WithKeyKind(KindString), WithAttributes(Attr("number").AsUnique()))
	h := element.MustNew("H", Values{"number": 1})

	got, err := element.GetBy("number", int64(1))
	require.NoError(t, err)
	assert.Same(t, h, got)

	got, err = element.GetBy("number", uint16(1))
	require.NoError(t, err)
	assert.Same(t, h, got)
}

func TestFind_ExactlyOneAxis(t *testing.T) {
	currency, members := seedCurrencies(t)

	tests := []struct {
		name string
		q    Query
	}{
		{name: "neither", q: Query{}},
		{name: "neither with default", q: Query{HasDefault: true, Default: members["USD"]}},
		{name: "key and filter", q: Query{Key: "USD", Filters: map[string]any{"symbol": "$"}}},
		{name: "two filters", q: Query{Filters: map[string]any{"symbol": "$", "value": "USD"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currency.Find(tt.q)
			assert.Nil(t, got)
			assert.True(t, errors.IsUsage(err), "got %v", err)
		})
	}

	_, err := currency.Get(nil)
	assert.True(t, errors.IsUsage(err))

	got, err := currency.Find(Query{Filters: map[string]any{"symbol": "¥"}})
	require.NoError(t, err)
	assert.Same(t, members["JPY"], got)
}

func TestScenario_Door(t *testing.T) {
	door := MustNewType("Door", WithKeyKind(KindInt), WithAttributes(Attr("description")))
	door1, err := door.New(1, Values{"description": "Door #1"})
	require.NoError(t, err)

	got, err := door.Get(1)
	require.NoError(t, err)
	assert.Same(t, door1, got)

	n, err := got.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = door.Get(2, WithDefault(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestScenario_CurrencySymbolClash(t *testing.T) {
	currency := MustNewType("Currency", WithAttributes(Attr("symbol").AsUnique(), Attr("name")))
	_, err := currency.New("USD", Values{"symbol": "$", "name": "United States dollar"})
	require.NoError(t, err)

	_, err = currency.New("CAD", Values{"symbol": "$", "name": "Canadian dollar"})
	assert.True(t, errors.IsDuplicateSecondaryKey(err))
}
