/*
Package storagemodels defines the storage vocabulary shared by every layer of shopstore.

Key Types:

Kind:
The entity kind. Each kind lives in its own partition of the single table:

	storagemodels.KindProduct // "product"
	storagemodels.KindUser    // "user"
	storagemodels.KindCart    // "cart"

Key and Record:
A Key addresses one item by its "Pk"/"Sk" attributes; a Record is the raw item
as the store holds it, key attributes included:

	key := storagemodels.Key{PK: "product", SK: "p#42"}
	rec := storagemodels.Record{
	    "name": &types.AttributeValueMemberS{Value: "Rose"},
	}

Condition:
The guard applied to a write:

	storagemodels.None         // unconditional
	storagemodels.MustNotExist // create
	storagemodels.MustExist    // update, delete

WriteOption:
Functional options for puts:

	old, err := store.PutItem(ctx, key, rec, storagemodels.MustExist,
	    storagemodels.WithReturnOld(),
	)
*/
package storagemodels
