// Package http provides the static file server used to host the RapidTriage test page.
//
// Every response carries permissive CORS headers:
//   - preflight OPTIONS requests get an empty 200
//   - everything else is served from the root directory by http.FileServer
package http
