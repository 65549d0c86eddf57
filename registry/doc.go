/*
Package registry defines the key scheme of the shop table.

Every entity kind lives in its own partition and is addressed by a sort key
built from its identity fields:

	product   Pk "product"   Sk "p#{productId}"
	user      Pk "user"      Sk "user#{userId}"
	cart      Pk "cart"      Sk "product#{productId}#user#{userId}"

Templates are compiled once into anchored patterns, so the mapping works in
both directions:

	scheme := registry.DefaultScheme()
	key := scheme.CartKey("12", "rose")  // {cart product#12#user#rose}
	pid, uid, err := scheme.DecodeCartKey(key.SK)

Decode reports a MalformedKeyError when a sort key does not follow its kind's
grammar. A Scheme holds no package-level state; build one with DefaultScheme
or NewScheme plus Register.
*/
package registry
