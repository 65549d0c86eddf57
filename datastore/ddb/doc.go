/*
Package ddb implements datastore.ItemStore on a single DynamoDB table.

Every item carries its key in the string attributes Pk and Sk. Conditional
writes are expressed on Pk:

	MustNotExist   attribute_not_exists(Pk)
	MustExist      attribute_exists(Pk)

A ConditionalCheckFailedException becomes errors.ErrConditionFailed. Any other
SDK failure is logged and returned as errors.ErrStoreUnavailable.

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{Region: "eu-north-1"})
	if err != nil {
	    return err
	}
	store := ddb.New(client, "perfume", ddb.WithLogger(logger))

Reads are strongly consistent. Partition queries follow LastEvaluatedKey
until the partition is exhausted.
*/
package ddb
