package main

// General API documentation for swaggo. Run `swag init -g cmd/hostevents/docs.go -o internal/httpapi/docs` to regenerate.
//
// @title           hostevents API
// @version         1.0
// @description     Push native host events into the registry and stream them back out.
//
// @contact.name   hostevents maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
