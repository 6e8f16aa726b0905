// Package qgen generates assessment questions from summarised course
// content. A request names a content scope, an overall question total and
// proportion tables over three axes (question kind, difficulty, cognitive
// level); the service apportions the total across the axes, summarises the
// scope once and runs one generation branch per kind in parallel, parsing
// each backend response into typed records and persisting them as artifacts.
//
// qgen is designed to be embedded in host applications. End-users typically
// interact via the high-level Service facade exposed by the root package:
//
//	srv, err := qgen.New(ctx, qgen.WithGenerationService(backend))
//	if err != nil { ... }
//	resp, err := srv.Generate(ctx, &qgen.Request{
//		ScopeID: "ch01",
//		Total:   30,
//		Kinds:   model.Table{{Label: "mcq", Value: 0.6}, {Label: "tf", Value: 0.4}},
//		...
//	})
//
// For more details see the README and individual sub-packages.
package qgen
