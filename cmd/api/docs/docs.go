// Package docs registers the OpenAPI document served under /swagger.
package docs

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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WelcomeResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/mcq": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a multiple choice question",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MCQResponse"}, "headers": {"X-Generation-ID": {"type": "string", "description": "Generation ID"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/mcq_trivia": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a trivia question",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MCQResponse"}, "headers": {"X-Generation-ID": {"type": "string", "description": "Generation ID"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/mcq2": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a batch of trivia questions",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MCQBatchResponse"}, "headers": {"X-Generation-ID": {"type": "string", "description": "Generation ID"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/coding_quiz": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a coding quiz",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CodingQuizResponse"}, "headers": {"X-Generation-ID": {"type": "string", "description": "Generation ID"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drag_drop": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a reorder exercise",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DragDropResponse"}, "headers": {"X-Generation-ID": {"type": "string", "description": "Generation ID"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Replay a stored generation",
                "parameters": [
                    {"type": "string", "description": "Generation ID (ULID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerationRecordResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ValidationError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "dto.GenerationRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "Ava"},
                "experience": {"type": "integer", "example": 3},
                "language": {"type": "string", "example": "Java"},
                "hints": {"type": "boolean"}
            }
        },
        "dto.MCQResponse": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "choices": {"type": "array", "items": {"type": "string"}},
                "answer": {"type": "integer"},
                "hints": {"type": "array", "description": "omitted when hints are off", "items": {"type": "string"}}
            }
        },
        "dto.MCQBatchResponse": {
            "type": "object",
            "properties": {
                "quizzes": {"type": "array", "items": {"$ref": "#/definitions/dto.MCQResponse"}},
                "hints": {"type": "array", "description": "omitted when hints are off", "items": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "dto.CodingQuizResponse": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "array", "items": {"type": "string"}},
                "hints": {"type": "array", "description": "omitted when hints are off", "items": {"type": "string"}}
            }
        },
        "dto.DragDropResponse": {
            "type": "object",
            "properties": {
                "question_type": {"type": "string", "example": "drag_drop"},
                "question_mode": {"type": "string", "example": "reorder"},
                "question_text": {"type": "string"},
                "items_to_drag": {"type": "array", "items": {"type": "string"}},
                "drop_zones": {"type": "array", "items": {"type": "string"}},
                "hints": {"type": "array", "description": "omitted when hints are off", "items": {"type": "string"}}
            }
        },
        "dto.GenerationRecordResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "language": {"type": "string"},
                "experience": {"type": "integer"},
                "username": {"type": "string"},
                "model": {"type": "string"},
                "created_at": {"type": "string"},
                "response": {}
            }
        },
        "dto.WelcomeResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "cache": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "middleware.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.ValidationError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Quiz Crew API",
	Description:      "Generates quiz content and progressive hints for programming learners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
