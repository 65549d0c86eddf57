/*
Package seed populates a shop table from a YAML fixture file.

	products:
	  - id: "1"
	    name: Rose
	    price: 250
	    img: https://example.com/rose.png
	    amountInStock: 5
	users:
	  - username: rose
	carts:
	  - username: rose
	    productId: "1"
	    amount: 3

Every fixture goes through the repositories, so it is validated exactly like
an API request. Applying the same file twice leaves the table unchanged.
*/
package seed
