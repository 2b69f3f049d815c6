// Package schema models the constrained OpenAPI/JSON-Schema subset the
// resolver operates on. It provides document sources and wrappers for
// loaders, the tagged Node representation produced by a validating parse
// at the document boundary, and the canonical choices structure consumed
// by selection widgets. Raw payload probing happens here exactly once;
// everything downstream pattern-matches on the tagged form.
package schema
