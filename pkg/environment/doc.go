// Package environment carries the deployment environment (development, staging,
// production) through request contexts.
//
// The server parses APP_ENV once with Parse and installs Middleware; the error
// handler consults IsDevelopment to decide whether error pages may show the
// underlying error.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
package environment
