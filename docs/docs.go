// Package docs holds the swagger document served at /swagger/*any.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments/card": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Process a card payment",
                "parameters": [{"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/request.PaymentCreateRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.PaymentResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/pix": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Process a PIX payment",
                "parameters": [{"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/request.PaymentCreateRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.PaymentResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/boleto": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Issue a boleto payment",
                "parameters": [{"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/request.PaymentCreateRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.PaymentResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/{external_id}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Reconcile and return the payment status",
                "parameters": [{"type": "string", "in": "path", "name": "external_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/{external_id}/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Cancel a pending payment",
                "parameters": [{"type": "string", "in": "path", "name": "external_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentResultResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/user/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "List a user's payments, newest first",
                "parameters": [{"type": "string", "in": "path", "name": "user_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.PaymentResponse"}}}
                }
            }
        },
        "/payments/id/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Get a payment by internal id",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/payments/external/{external_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Get a payment by processor id",
                "parameters": [{"type": "string", "in": "path", "name": "external_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "request.PaymentCreateRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "amount": {"type": "string", "example": "150.00"},
                "currency": {"type": "string", "example": "BRL"},
                "payment_method": {"type": "string", "enum": ["card", "pix", "boleto"]},
                "installments": {"type": "integer"},
                "description": {"type": "string"},
                "customer": {"type": "object"},
                "card": {"type": "object"},
                "pix": {"type": "object"},
                "boleto": {"type": "object"},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.PaymentResultResponse": {
            "type": "object",
            "properties": {
                "external_id": {"type": "string"},
                "status": {"type": "string"},
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "payment_method": {"type": "string"},
                "installments": {"type": "integer"},
                "error_message": {"type": "string"},
                "pix_qr_code": {"type": "string"},
                "pix_copy_paste": {"type": "string"},
                "boleto_url": {"type": "string"},
                "boleto_barcode": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.PaymentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "external_id": {"type": "string"},
                "user_id": {"type": "string"},
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "payment_method": {"type": "string"},
                "status": {"type": "string"},
                "installments": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "processed_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Moturial Payments API",
	Description:      "Motorcycle rental payments: card, PIX and boleto over Mercado Pago, ledger on DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
