/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dataenum/errors"
)

// Members serialize as their primary key in JSON, YAML and DynamoDB items.
var (
	_ json.Marshaler           = (*Member)(nil)
	_ attributevalue.Marshaler = (*Member)(nil)
)

// MarshalJSON encodes the primary key.
func (m *Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.key)
}

// MarshalYAML encodes the primary key.
func (m *Member) MarshalYAML() (any, error) {
	return m.key, nil
}

// MarshalDynamoDBAttributeValue encodes the primary key as S or N.
func (m *Member) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	switch k := m.key.(type) {
	case string:
		return &types.AttributeValueMemberS{Value: k}, nil
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(k, 10)}, nil
	}
	return nil, errors.NewInvalidKeyError(m.typ.name, m.key, "key cannot be encoded")
}

// Item encodes the key and every set attribute as a DynamoDB item, for
// exporting reference data.
func (m *Member) Item() (map[string]types.AttributeValue, error) {
	doc := make(map[string]any, len(m.attrs)+1)
	for name, v := range m.attrs {
		if v == Unset {
			continue
		}
		doc[name] = v
	}
	doc[m.typ.primaryAttr] = m.key

	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s member %v: %w", m.typ.name, m.key, err)
	}
	return item, nil
}

// FromJSON resolves a JSON-encoded key to a registered member. A JSON null
// resolves to nil.
func (t *Type) FromJSON(data []byte) (*Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.NewInvalidKeyError(t.name, string(data), err.Error())
	}

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return t.Get(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, errors.NewInvalidKeyError(t.name, v.String(), "not an integer")
		}
		return t.Get(n)
	}
	return nil, errors.NewInvalidKeyError(t.name, string(data), fmt.Sprintf("unsupported JSON value %T", raw))
}

// FromAttributeValue resolves a DynamoDB S or N value to a registered member.
// A NULL value resolves to nil.
func (t *Type) FromAttributeValue(av types.AttributeValue) (*Member, error) {
	switch av.(type) {
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberS:
		var s string
		if err := attributevalue.Unmarshal(av, &s); err != nil {
			return nil, errors.NewInvalidKeyError(t.name, av, err.Error())
		}
		return t.Get(s)
	case *types.AttributeValueMemberN:
		var n int64
		if err := attributevalue.Unmarshal(av, &n); err != nil {
			return nil, errors.NewInvalidKeyError(t.name, av, err.Error())
		}
		return t.Get(n)
	}
	return nil, errors.NewInvalidKeyError(t.name, av, fmt.Sprintf("unsupported attribute value %T", av))
}
