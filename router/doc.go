/*

Package router maps incoming HTTP methods and URL paths to registered handlers,
extracting named path parameters along the way.

A [*Router] is built up front by registration calls - [*Router.Get], [*Router.Post]
and friends - each of which compiles its path into an anchored pattern and appends
a [Route] to that method's table. [*Router.Group] nests registrations under a shared
path prefix. Registration order is semantically significant: [*Router.Dispatch] walks
a method's routes in the order they were registered and the first pattern to match
wins, with no specificity ranking.

Paths name parameters with single-segment placeholders:

	r.Get("/users/{id}", showUser)

A placeholder matches one or more characters excluding "/", so "/users/42" matches
the route above with id "42" while "/users/42/edit" does not match it at all.

Register all routes before the first call to Dispatch. Once built, the route table
is read-only and safe for concurrent use.

*/
package router
