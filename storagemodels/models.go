/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of the table's primary key.
const (
	AttrPartitionKey = "Pk"
	AttrSortKey      = "Sk"
)

// Kind names an entity kind. Every kind owns exactly one partition.
type Kind string

const (
	KindProduct Kind = "product"
	KindUser    Kind = "user"
	KindCart    Kind = "cart"
)

// Key addresses a single item by partition key and sort key.
type Key struct {
	PK string
	SK string
}

func (k Key) String() string {
	return k.PK + "|" + k.SK
}

// Attributes returns the key as DynamoDB attribute values.
func (k Key) Attributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrPartitionKey: &types.AttributeValueMemberS{Value: k.PK},
		AttrSortKey:      &types.AttributeValueMemberS{Value: k.SK},
	}
}

// Record is a raw item as held by the store, key attributes included.
type Record = map[string]types.AttributeValue

// KeyOf extracts the primary key from a record. ok is false when either key
// attribute is missing or not a string.
func KeyOf(rec Record) (Key, bool) {
	pk, okPK := rec[AttrPartitionKey].(*types.AttributeValueMemberS)
	sk, okSK := rec[AttrSortKey].(*types.AttributeValueMemberS)
	if !okPK || !okSK {
		return Key{}, false
	}
	return Key{PK: pk.Value, SK: sk.Value}, true
}

// Condition guards a write against the current state of the addressed item.
type Condition int

const (
	// None writes unconditionally.
	None Condition = iota
	// MustNotExist fails the write if an item with the key is present.
	MustNotExist
	// MustExist fails the write if no item with the key is present.
	MustExist
)

func (c Condition) String() string {
	switch c {
	case None:
		return "none"
	case MustNotExist:
		return "must-not-exist"
	case MustExist:
		return "must-exist"
	default:
		return fmt.Sprintf("condition(%d)", int(c))
	}
}
