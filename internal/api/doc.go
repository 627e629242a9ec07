// Package api exposes the category and task services over HTTP. Handlers
// decode and validate JSON requests, call a service, and translate the
// result or error into a status code and a JSON body.
package api
