// Package json is a push-only, composable JSON encoder. Values encode
// themselves through the Appender interface; object members and array
// elements are built as partial fragments (Row, Element) that combine
// with Join in any grouping, with comma placement handled by the
// combination itself. The package never parses JSON.
package json
