/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/suparena/shopstore/registry"
	"github.com/suparena/shopstore/storagemodels"
)

// ProductRecord is the stored shape of a product.
type ProductRecord struct {
	Pk            string   `dynamodbav:"Pk"`
	Sk            string   `dynamodbav:"Sk"`
	Name          *string  `dynamodbav:"name"`
	Price         *float64 `dynamodbav:"price"`
	Img           *string  `dynamodbav:"img"`
	AmountInStock *int64   `dynamodbav:"amountInStock"`

	id string
}

// Validate checks the key grammar and every attribute of the record.
func (m *ProductRecord) Validate(formats strfmt.Registry, scheme *registry.Scheme) error {
	var res results

	res.addErr(validatePartition(scheme, storagemodels.KindProduct, m.Pk))
	if id, err := scheme.DecodeProductKey(m.Sk); err != nil {
		res.addErr(err)
	} else {
		res.addErr(validateProductID(inItem, id))
		m.id = id
	}

	if err := validate.Required("name", inItem, m.Name); err != nil {
		res.add(err)
	} else {
		res.addErr(validateName(inItem, *m.Name))
	}

	if err := validate.Required("price", inItem, m.Price); err != nil {
		res.add(err)
	} else {
		res.addErr(validatePrice(inItem, *m.Price))
	}

	if err := validate.Required("img", inItem, m.Img); err != nil {
		res.add(err)
	} else {
		res.addErr(validateImg(inItem, *m.Img, formats))
	}

	if err := validate.Required("amountInStock", inItem, m.AmountInStock); err != nil {
		res.add(err)
	} else {
		res.addErr(validateStock(inItem, *m.AmountInStock))
	}

	return res.err()
}

func (m *ProductRecord) product() Product {
	return Product{
		ID:            m.id,
		Name:          *m.Name,
		Price:         *m.Price,
		Img:           *m.Img,
		AmountInStock: *m.AmountInStock,
	}
}

// UserRecord is the stored shape of a user.
type UserRecord struct {
	Pk       string  `dynamodbav:"Pk"`
	Sk       string  `dynamodbav:"Sk"`
	Username *string `dynamodbav:"username"`

	id string
}

// Validate checks the key grammar and every attribute of the record.
func (m *UserRecord) Validate(formats strfmt.Registry, scheme *registry.Scheme) error {
	var res results

	res.addErr(validatePartition(scheme, storagemodels.KindUser, m.Pk))
	if id, err := scheme.DecodeUserKey(m.Sk); err != nil {
		res.addErr(err)
	} else {
		res.addErr(validateUserID(inItem, id))
		m.id = id
	}

	if err := validate.Required("username", inItem, m.Username); err != nil {
		res.add(err)
	} else {
		res.addErr(validateUsername(inItem, *m.Username))
	}

	return res.err()
}

func (m *UserRecord) user() User {
	return User{ID: m.id, Username: *m.Username}
}

// CartItemRecord is the stored shape of a cart line. Both identities live in
// the sort key.
type CartItemRecord struct {
	Pk     string `dynamodbav:"Pk"`
	Sk     string `dynamodbav:"Sk"`
	Amount *int64 `dynamodbav:"amount"`

	productID string
	userID    string
}

// Validate checks the key grammar and every attribute of the record.
func (m *CartItemRecord) Validate(formats strfmt.Registry, scheme *registry.Scheme) error {
	var res results

	res.addErr(validatePartition(scheme, storagemodels.KindCart, m.Pk))
	if pid, uid, err := scheme.DecodeCartKey(m.Sk); err != nil {
		res.addErr(err)
	} else {
		res.addErr(validateProductID(inItem, pid))
		res.addErr(validateUserID(inItem, uid))
		m.productID, m.userID = pid, uid
	}

	if err := validate.Required("amount", inItem, m.Amount); err != nil {
		res.add(err)
	} else {
		res.addErr(validateAmount(inItem, *m.Amount))
	}

	return res.err()
}

func (m *CartItemRecord) cartItem() CartItem {
	return CartItem{UserID: m.userID, ProductID: m.productID, Amount: *m.Amount}
}

func validatePartition(scheme *registry.Scheme, kind storagemodels.Kind, pk string) error {
	want, err := scheme.Partition(kind)
	if err != nil {
		return err
	}
	if v := validate.Enum(storagemodels.AttrPartitionKey, inItem, pk, []interface{}{want}); v != nil {
		return v
	}
	return nil
}

// MarshalProduct builds the stored record of p at key.
func MarshalProduct(key storagemodels.Key, p Product) (storagemodels.Record, error) {
	return attributevalue.MarshalMap(ProductRecord{
		Pk:            key.PK,
		Sk:            key.SK,
		Name:          &p.Name,
		Price:         &p.Price,
		Img:           &p.Img,
		AmountInStock: &p.AmountInStock,
	})
}

// MarshalUser builds the stored record of u at key.
func MarshalUser(key storagemodels.Key, u User) (storagemodels.Record, error) {
	return attributevalue.MarshalMap(UserRecord{Pk: key.PK, Sk: key.SK, Username: &u.Username})
}

// MarshalCartItem builds the stored record of c at key.
func MarshalCartItem(key storagemodels.Key, c CartItem) (storagemodels.Record, error) {
	return attributevalue.MarshalMap(CartItemRecord{Pk: key.PK, Sk: key.SK, Amount: &c.Amount})
}
