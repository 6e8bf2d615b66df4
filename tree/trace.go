package tree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'baum.tree'
func tracer() tracing.Trace {
	return tracing.Select("baum.tree")
}
