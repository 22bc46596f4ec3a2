// Package binder fills request structs from the parts of an HTTP request.
//
// Each binder reads one source, selected by struct tag:
//
//   - Path(extractor) reads `path` tags, e.g. chi route parameters
//   - Form() reads `form` tags from urlencoded or multipart bodies
//   - Signals() reads DataStar signals into `json` tags
//
// Binders are combined with handler.WithBinders and run in order. A binder
// whose source is missing returns ErrBinderNotApplicable, which handler.Wrap
// skips, so one request type can serve a plain form post and a DataStar action.
//
// Binding failures wrap one of the ErrFailedToParse* sentinels and are shown as
// 400 Bad Request by the shared error handler.
package binder
