/*
Package x contains the extensions of the bazaar chain.

Extensions implement common functionality (Handler, Decorator,
Initializer, etc.) and are combined together in the application to
construct the chain. Sub-packages cover signatures (sigs), balances
(cash), tokens (nft), trading (market) and the generic middlewares
(utils).

Exported types are prefixed by the package when used, so follow standard
go naming conventions and avoid stutter. Use eg. `nft.CreateMsg` in place
of `nft.NftCreateMsg`.
*/
package x
