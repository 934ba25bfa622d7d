// Package search queries a marketplace listing service for extracted
// vehicles.
//
// A query is the vehicle's FullText augmented with negative keywords
// ("2015 CHEVROLET IMPALA -parts -salvage"); the service interprets the
// dashed terms as exclusions and returns listings in rank order. The
// wire contract (query parameter, JSON response shape, ranking) is owned
// by the external service; this package is thin glue over it.
package search
