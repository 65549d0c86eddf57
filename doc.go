/*
Package shopstore is the storage layer of a small shop: products, users and
cart lines kept in one DynamoDB table.

The layer is built bottom-up:
  - registry: the key scheme mapping each entity to its Pk and Sk
  - models: entities and the rules gating every write and read
  - datastore: the item store interface, with DynamoDB and in-memory backends
  - repository: create/read/list/update/delete per entity on conditional writes
  - errors: the error taxonomy returned by all of the above

Basic Usage:

	cfg, err := config.Load("shopstore.yaml")
	if err != nil {
	    return err
	}
	store, err := shopstore.Open(ctx, cfg, logger)
	if err != nil {
	    return err
	}

	rose, err := store.Products.Create(ctx, &models.ProductInput{
	    Name:          aws.String("Rose"),
	    Price:         aws.Float64(250),
	    Img:           aws.String("https://example.com/rose.png"),
	    AmountInStock: aws.Int64(5),
	})

	_, err = store.Carts.Upsert(ctx, &models.CartItemInput{
	    UserID:    aws.String(userID),
	    ProductID: aws.String(rose.ID),
	    Amount:    aws.Int64(3),
	})

For tests, build the Store on datastore/mock instead:

	store := shopstore.New(mock.New())
*/
package shopstore
