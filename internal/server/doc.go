// Package server provides HTTP routing, middleware, and media handlers for the dev server.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
// [RequestLogger] is the middleware the dev server installs by default.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Media Handler
//
// [MediaHandler] serves the two asset trees the client expects from a deployed
// backend: uploaded files under /uploads/ and the curated category videos under
// /videos/marches/ and /videos/music/.
//
// Responses honor Range requests so audio and video players can seek.
// Paths that would escape the configured directories are rejected with 404.
//
// # Media Watcher
//
// [MediaWatcher] watches the served directories with fsnotify and reports
// debounced change notifications, so files dropped into the media directories
// are visible without restarting the server.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
