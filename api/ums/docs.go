// Package ums registers the OpenAPI document of the account service with
// swag so http-swagger can serve it at /swagger/. It mirrors the handler
// annotations in internal/ums/http and can be regenerated from them with
// `swag init -g internal/ums/http/router.go -o api/ums`.
package ums

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/ums"
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
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/umssdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/umssdk.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/umssdk.HealthResponse"}}
                }
            }
        },
        "/v1/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Register an account",
                "parameters": [
                    {"description": "Sign up form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/umssdk.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "The new account", "schema": {"$ref": "#/definitions/umssdk.UserResponse"}},
                    "400": {"description": "Validation failed; details lists every invalid field", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}}
                }
            }
        },
        "/v1/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Sign in form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/umssdk.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "The logged in user", "schema": {"$ref": "#/definitions/umssdk.UserResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}}
                }
            }
        },
        "/v1/logout": {
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["Account"],
                "summary": "Log out",
                "responses": {
                    "204": {"description": "Logged out"}
                }
            }
        },
        "/v1/profile": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Get profile",
                "responses": {
                    "200": {"description": "The logged in user", "schema": {"$ref": "#/definitions/umssdk.UserResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Update profile",
                "parameters": [
                    {"description": "Profile fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/umssdk.ProfileUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "The updated user", "schema": {"$ref": "#/definitions/umssdk.UserResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}}
                }
            }
        },
        "/v1/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Validation"],
                "summary": "Validate one field",
                "parameters": [
                    {"description": "Field to validate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/umssdk.ValidateFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "Empty error when valid", "schema": {"$ref": "#/definitions/umssdk.ValidateFieldResponse"}},
                    "400": {"description": "Unknown mode or malformed body", "schema": {"$ref": "#/definitions/umssdk.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "umssdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation_failed"},
                "message": {"type": "string", "example": "Please fix the errors before submitting"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "umssdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ada@example.com"},
                "password": {"type": "string", "example": "Abc123!@"},
                "confirmPassword": {"type": "string", "example": "Abc123!@"},
                "firstName": {"type": "string", "example": "Ada"},
                "lastName": {"type": "string", "example": "Lovelace"},
                "phone": {"type": "string", "example": "+61 412345678"}
            }
        },
        "umssdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ada@example.com"},
                "password": {"type": "string", "example": "Abc123!@"}
            }
        },
        "umssdk.ProfileUpdateRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string", "example": "Ada"},
                "lastName": {"type": "string", "example": "Lovelace"},
                "email": {"type": "string", "example": "ada@example.com"},
                "phone": {"type": "string", "example": ""}
            }
        },
        "umssdk.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "01J9Z3J5Q2W8X4Y6Z7A8B9C0D1"},
                "email": {"type": "string", "example": "ada@example.com"},
                "firstName": {"type": "string", "example": "Ada"},
                "lastName": {"type": "string", "example": "Lovelace"},
                "phone": {"type": "string", "example": ""},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "umssdk.ValidateFieldRequest": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "example": "register"},
                "field": {"type": "string", "example": "password"},
                "value": {"type": "string", "example": "abc12345"},
                "password": {"type": "string"}
            }
        },
        "umssdk.ValidateFieldResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "password"},
                "valid": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Password must contain at least one uppercase letter"}
            }
        },
        "umssdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/umssdk.HealthChecks"}
            }
        },
        "umssdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "type": "apiKey",
            "name": "ums_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "UMS Account Service API",
	Description:      "User management: registration, login, session guarded profile editing and field validation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
