/*
Package cash implements the balances of the chain.

Every address may hold a wallet, a set of coins of different tickers.
Other extensions move value using the Controller, which is also exposed as
the Transferer capability. A transfer either keeps the sender alive or
allows it to drop below the configured minimal balance.
*/
package cash
