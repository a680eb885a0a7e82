// Package docs registers the OpenAPI document served by the swagger UI. Keep it in step with the
// swag annotations on the controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin": {
            "get": {
                "description": "Course counts, invoice totals in cents, customer count and monthly revenue",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size", "name": "size", "in": "query"},
                    {"type": "string", "description": "Search by name or number", "name": "query", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates the submission, rejects duplicate names or numbers and inserts the course",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [
                    {"description": "Course form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseForm"}}
                ],
                "responses": {
                    "303": {"description": "Redirect to /admin/courses"},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid or duplicate fields", "schema": {"$ref": "#/definitions/dto.CourseFormState"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.CourseFormState"}}
                }
            }
        },
        "/admin/courses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Applies the same field rules as create and updates the course. A missing id is a no-op.",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Course form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseForm"}}
                ],
                "responses": {
                    "303": {"description": "Redirect to /admin/courses"},
                    "400": {"description": "Malformed id or body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/dto.CourseFormState"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.CourseFormState"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted Course.", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/admin/invoices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size", "name": "size", "in": "query"},
                    {"type": "string", "description": "Search by customer, amount, date or status", "name": "query", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates the submission and inserts an invoice dated today with the amount stored in cents",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Create an invoice",
                "parameters": [
                    {"description": "Invoice form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.InvoiceForm"}}
                ],
                "responses": {
                    "303": {"description": "Redirect to /admin/invoices"},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/dto.InvoiceFormState"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.InvoiceFormState"}}
                }
            }
        },
        "/admin/invoices/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Get an invoice",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Update an invoice",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Invoice ID", "name": "id", "in": "path", "required": true},
                    {"description": "Invoice form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.InvoiceForm"}}
                ],
                "responses": {
                    "303": {"description": "Redirect to /admin/invoices"},
                    "400": {"description": "Malformed id or body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/dto.InvoiceFormState"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.InvoiceFormState"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Delete an invoice",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted Invoice.", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Member dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login page",
                "parameters": [
                    {"type": "string", "description": "Where to go after signing in", "name": "callbackUrl", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "post": {
                "description": "Checks the credentials, sets the session cookie and redirects to the callback or the user's area",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "303": {"description": "Redirect to the callback or the user's area"},
                    "401": {"description": "Invalid credentials.", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Something went wrong.", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "User logout",
                "responses": {
                    "303": {"description": "Redirect to /login"}
                }
            }
        },
        "/seed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed the database",
                "responses": {
                    "200": {"description": "Database seeded successfully", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.FailureResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.CourseForm": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Forklift Safety"},
                "number": {"type": "string", "example": "1042"},
                "start": {"type": "string", "example": "2024-09-02"},
                "end": {"type": "string", "example": "2024-12-20"},
                "max": {"type": "string", "example": "40"},
                "status": {"type": "string", "example": "active"}
            }
        },
        "dto.CourseFormState": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/dto.CourseForm"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"}
            }
        },
        "dto.InvoiceForm": {
            "type": "object",
            "properties": {
                "customerId": {"type": "string", "example": "3958dc9e-712f-4377-85e9-fec4b6a6442a"},
                "amount": {"type": "string", "example": "157.95"},
                "status": {"type": "string", "example": "pending"}
            }
        },
        "dto.InvoiceFormState": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/dto.InvoiceForm"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "user@nextmail.com"},
                "password": {"type": "string", "example": "123456"},
                "callbackUrl": {"type": "string", "example": "/admin/courses"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Deleted Course."}
            }
        },
        "dto.FailureResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VAL_001"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "details": {"type": "string"},
                "severity": {"type": "string", "example": "ERROR"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Course Admin API",
	Description:      "Administrative dashboard backend for courses, invoices and customers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
