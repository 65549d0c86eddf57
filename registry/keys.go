/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "github.com/suparena/shopstore/storagemodels"

// ProductKey returns the key of product id. It panics if the scheme has no
// product template.
func (s *Scheme) ProductKey(id string) storagemodels.Key {
	return s.mustEncode(storagemodels.KindProduct, IDs{FieldProductID: id})
}

// UserKey returns the key of user id.
func (s *Scheme) UserKey(id string) storagemodels.Key {
	return s.mustEncode(storagemodels.KindUser, IDs{FieldUserID: id})
}

// CartKey returns the key of the cart line for (productID, userID).
func (s *Scheme) CartKey(productID, userID string) storagemodels.Key {
	return s.mustEncode(storagemodels.KindCart, IDs{
		FieldProductID: productID,
		FieldUserID:    userID,
	})
}

// DecodeProductKey recovers the product id from a product sort key.
func (s *Scheme) DecodeProductKey(sk string) (string, error) {
	ids, err := s.Decode(storagemodels.KindProduct, sk)
	if err != nil {
		return "", err
	}
	return ids[FieldProductID], nil
}

// DecodeUserKey recovers the user id from a user sort key.
func (s *Scheme) DecodeUserKey(sk string) (string, error) {
	ids, err := s.Decode(storagemodels.KindUser, sk)
	if err != nil {
		return "", err
	}
	return ids[FieldUserID], nil
}

// DecodeCartKey recovers (productID, userID) from a cart sort key.
func (s *Scheme) DecodeCartKey(sk string) (productID, userID string, err error) {
	ids, err := s.Decode(storagemodels.KindCart, sk)
	if err != nil {
		return "", "", err
	}
	return ids[FieldProductID], ids[FieldUserID], nil
}

func (s *Scheme) mustEncode(kind storagemodels.Kind, ids IDs) storagemodels.Key {
	key, err := s.Encode(kind, ids)
	if err != nil {
		panic(err)
	}
	return key
}
