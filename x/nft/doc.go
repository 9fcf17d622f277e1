/*
Package nft implements the asset registry.

Every token has an owner, a details payload and two latches. Sealed is set
by the owner and forbids any further change of the details. Locked is set
by another extension (the market) through the Controller capability and
forbids any change made by the owner until that extension releases it.

Token identifiers are allocated from a counter and never reused. Once the
identifier space is exhausted no more tokens can be created.

The details payload is a type parameter so that every application decides
what a token describes.
*/
package nft
