/*
Package repository implements the create, read, list, update and delete
protocol for each shop entity on top of a datastore.ItemStore.

Every write is validated first and every read is validated again before it is
returned, so callers only ever see entities that passed the rules in models.
Creation and update rely on single-item conditional writes:

	Products.Create / CreateWithID   MustNotExist   taken id -> ErrAlreadyExists
	Users.Create                     MustNotExist
	Carts.Upsert                     None           same pair overwrites amount
	Update / UpdateAmount            MustExist      missing -> ErrNotFound
	Delete                           MustExist      missing -> ErrNotFound

Reads treat an absent record and a record that fails validation alike: Get
reports ErrNotFound and List skips it. Skipped records are logged at warn
level with their key.

	products := repository.NewProducts(store, repository.WithLogger(logger))
	rose, err := products.Create(ctx, &models.ProductInput{...})
*/
package repository
