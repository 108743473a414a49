// Package main runs the decoder panel daemon: the dictionary list, edit,
// import and export actions plus page apply and restore, served as a JSON
// API for a browser-side panel. See package panel for the routes.
//
// Behaviour
//
//   - State is loaded once at start and persisted after every mutation.
//   - Page actions go to the configured browser (DevTools) or HTML file.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is 127.0.0.1:8740.
package main
