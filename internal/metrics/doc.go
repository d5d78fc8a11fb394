/*
Package metrics exposes Prometheus collectors for generated sequences and sort
passes, and an optional HTTP service serving them.
*/
package metrics
