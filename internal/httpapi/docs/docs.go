// Package docs holds the OpenAPI document served under /swagger when the
// binary is built with -tags=swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "hostevents maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/native/{kind}": {
            "post": {
                "description": "Queues one upstream notification for delivery to registered listeners.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["native"],
                "summary": "Push a native notification",
                "parameters": [
                    {
                        "enum": ["app-launched", "component-lifecycle", "command-completed", "native-event"],
                        "type": "string",
                        "description": "Notification kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Kind-specific payload",
                        "name": "payload",
                        "in": "body",
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/types.AcceptedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/commands": {
            "post": {
                "description": "Queues a command notification for every registered command listener.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commands"],
                "summary": "Notify command listeners",
                "parameters": [
                    {
                        "description": "Command",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.CommandRequest"}
                    }
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/types.AcceptedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Registry status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        },
        "/stream": {
            "get": {
                "description": "Upgrades to a websocket and writes one JSON frame per delivered event.",
                "tags": ["stream"],
                "summary": "Stream events over a websocket",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma-separated kind names (default: all)",
                        "name": "kinds",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {"description": "Switching Protocols", "schema": {"$ref": "#/definitions/types.StreamFrame"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.AcceptedResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "component-lifecycle"},
                "queue_len": {"type": "integer", "example": 0}
            }
        },
        "types.CommandRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "push"},
                "payload": {"type": "object"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "error": {"type": "string", "example": "invalid JSON body"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "delivered_total": {"type": "integer", "example": 42},
                "queue_cap": {"type": "integer", "example": 256},
                "queue_len": {"type": "integer", "example": 0},
                "running": {"type": "boolean", "example": true},
                "server_time_unix": {"type": "integer", "example": 1700000000},
                "subscriptions": {"type": "object", "additionalProperties": {"type": "integer"}},
                "uptime_seconds": {"type": "integer", "example": 3600}
            }
        },
        "types.StreamFrame": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "kind": {"type": "string", "example": "native-event"},
                "name": {"type": "string", "example": "navigationButtonPressed"},
                "time_unix_ms": {"type": "integer", "example": 1700000000000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "hostevents API",
	Description:      "Push native host events into the registry and stream them back out.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
