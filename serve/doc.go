/*

Package serve adapts a *router.Router to net/http.

The router core is a pure function of (method, path, override field);
serve is the collaborator that reads those inputs off an *http.Request,
invokes the matched handler and renders the outcome - handler results,
handler failures and the not-found response data alike - as JSON.

*/
package serve
