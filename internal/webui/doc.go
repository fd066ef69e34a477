// Package webui renders the screening calendar as a single HTML page and
// serves it over HTTP. The same template backs both the live server and
// static file generation; filtering happens client-side so the generated
// page stays useful without a backend.
package webui
