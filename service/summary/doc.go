// Package summary defines the boundary to the external retrieval-backed
// summary provider. The provider is called exactly once per request, before
// branch fan-out; every branch shares the returned text. The package also
// owns the retrieval filter and query construction so providers only need to
// execute them.
package summary
