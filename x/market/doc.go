/*
Package market implements an escrow exchange for tokens of the nft
extension.

An owner lists a token for a fixed price. While listed, the token is locked
and cannot be mutated or transferred. A buyer pays the price in currency and
receives the token unlocked. Every exchange operation either applies all of
its changes or none of them.
*/
package market
