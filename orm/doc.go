/*
Package orm provides an easy to use db wrapper

Model is a persistent entity stored under a bucket prefix. ModelBucket maps
a primary key to a single model instance and exposes the bucket to the query
router. Sequence is an overflow checked counter that is used to allocate
unique identifiers.
*/
package orm
