// Package swagger holds the OpenAPI document of the HTTP API, served at /swagger/*.
// Keep it in sync with the @Router annotations of the feature handlers.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "description": "Returns the user for a username. On first login the user is created with a seeded item list.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Username",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "User", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid username", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "description": "Returns the user named by the x-user-id header, or null.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current User",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "User or null", "schema": {"$ref": "#/definitions/models.User"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Performs the schema, list and storage checks without fixing anything.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {"description": "Combined Report", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/integrity/lists": {
            "get": {
                "description": "Reports duplicate, floor and crowded keys. With fix=true every affected list is renumbered.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Lists",
                "parameters": [
                    {"type": "boolean", "description": "Renumber affected lists", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List Report", "schema": {"$ref": "#/definitions/checks.ListReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/schema": {
            "get": {
                "description": "Checks that the users and order_items tables match the models.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Schema",
                "responses": {
                    "200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/storage": {
            "get": {
                "description": "Checks that the snapshot bucket exists and counts stored snapshots.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Storage",
                "parameters": [
                    {"type": "boolean", "description": "Create the bucket when missing", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Storage Report", "schema": {"$ref": "#/definitions/checks.StorageReport"}},
                    "404": {"description": "Storage disabled", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items": {
            "get": {
                "description": "Returns the owner's items in ascending position order.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List Items",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Items", "schema": {"type": "array", "items": {"$ref": "#/definitions/ordering.Item"}}},
                    "401": {"description": "Missing owner", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/normalize": {
            "post": {
                "description": "Respaces the owner's list to multiples of the step without changing its order.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Normalize List",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Items", "schema": {"type": "array", "items": {"$ref": "#/definitions/ordering.Item"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/reset": {
            "post": {
                "description": "Replaces the owner's list with a fresh seed, snapshotting the old one when storage is enabled.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Reset List",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/settings": {
            "get": {
                "description": "Returns the step, threshold, item count and palette used for seeding.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Seeding Settings",
                "responses": {
                    "200": {"description": "Settings", "schema": {"$ref": "#/definitions/ordering.Settings"}}
                }
            }
        },
        "/items/snapshots": {
            "get": {
                "description": "Lists the keys of the owner's stored list snapshots.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List Snapshots",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Snapshot keys", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "404": {"description": "Snapshots disabled", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/{id}/position": {
            "patch": {
                "description": "Moves an item to a new position. Collisions renumber the whole list.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Move Item",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "x-user-id", "in": "header", "required": true},
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New position",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/items.MoveRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Moved item", "schema": {"$ref": "#/definitions/ordering.Item"}},
                    "400": {"description": "Invalid position", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Item not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "checks.ListIssue": {
            "type": "object",
            "properties": {
                "item_id": {"type": "string"},
                "kind": {"type": "string"},
                "owner_id": {"type": "string"},
                "position": {"type": "number"}
            }
        },
        "checks.ListReport": {
            "type": "object",
            "properties": {
                "affected": {"type": "array", "items": {"type": "string"}},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/checks.ListIssue"}},
                "items": {"type": "integer"},
                "owners": {"type": "integer"}
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}}
            }
        },
        "checks.StorageReport": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "exists": {"type": "boolean"},
                "snapshots": {"type": "integer"}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "items.MoveRequest": {
            "type": "object",
            "properties": {
                "newPosition": {"type": "number"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "ordering.Color": {
            "type": "object",
            "properties": {
                "bg": {"type": "string"},
                "fg": {"type": "string"}
            }
        },
        "ordering.Item": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "fgColor": {"type": "string"},
                "id": {"type": "string"},
                "label": {"type": "string"},
                "position": {"type": "number"},
                "userId": {"type": "string"}
            }
        },
        "ordering.Settings": {
            "type": "object",
            "properties": {
                "itemsCount": {"type": "integer"},
                "palette": {"type": "array", "items": {"$ref": "#/definitions/ordering.Color"}},
                "step": {"type": "number"},
                "threshold": {"type": "number"}
            }
        },
        "users.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reorder API",
	Description:      "API for per-user reorderable item lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
