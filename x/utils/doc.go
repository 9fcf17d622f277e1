/*
Package utils provides the middlewares shared by every call: per call
rollback (Savepoint), panic recovery (Recovery), structured logging
(Logging) and tagging of the executed action (ActionTagger).
*/
package utils
