/*
Package models defines the shop entities and the rules that gate them.

Each kind has three shapes:

  - an Input, the caller-supplied body with pointer fields so absence can be
    told apart from zero values, validated in the go-swagger manner through
    go-openapi/validate
  - a Record, the stored item with its Pk and Sk attributes
  - the entity itself (Product, User, CartItem), handed to callers only after
    validation

A Validator carries the format registry and key scheme that the rules need:

	v := models.NewValidator()
	p, err := v.Product(&models.ProductInput{...})
	if err != nil {
	    for _, issue := range errors.Issues(err) {
	        fmt.Println(issue.Field, issue.Message)
	    }
	}

Stored records are validated on every read, key grammar included, so a record
written by another tool with a bad attribute or a malformed sort key is
reported rather than returned.
*/
package models
