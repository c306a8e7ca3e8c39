// Package tui is the terminal user interface of the console, built on
// bubbletea.
//
// [RootModel] routes between pages and owns the cross-cutting behaviour:
// restoring the session at start-up, reacting to sign-in, sign-out and
// session expiry, and forwarding summary refreshes to the home page. Every
// page is a pointer model; results of asynchronous commands carry the
// generation of the page visit that issued them and are dropped when the
// page has been left or re-entered since.
package tui
