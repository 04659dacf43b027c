// Package docs holds the swagger document served by http-swagger.
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
        "/auth/login": {
            "post": {
                "summary": "Authenticate a cashier against the fixed user table",
                "tags": ["auth"],
                "responses": {
                    "200": {"description": "session token"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "summary": "Clear the cashier's cart and active prescription",
                "tags": ["auth"],
                "responses": {"200": {"description": "logged out"}}
            }
        },
        "/medications": {
            "get": {
                "summary": "List the catalog, filtered by category and search text",
                "tags": ["catalog"],
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "medications"}}
            }
        },
        "/medications/{id}": {
            "get": {
                "summary": "Fetch one catalog entry",
                "tags": ["catalog"],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "medication"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/cart": {
            "get": {
                "summary": "Current cart with running total",
                "tags": ["cart"],
                "responses": {"200": {"description": "cart"}}
            }
        },
        "/cart/items": {
            "post": {
                "summary": "Add a medication to the cart",
                "tags": ["cart"],
                "responses": {
                    "200": {"description": "cart"},
                    "409": {"description": "prescription required or out of stock"}
                }
            }
        },
        "/prescriptions": {
            "post": {
                "summary": "Install the session's active prescription",
                "tags": ["prescriptions"],
                "responses": {
                    "201": {"description": "prescription"},
                    "403": {"description": "prescribe permission missing"}
                }
            }
        },
        "/checkout": {
            "post": {
                "summary": "Validate the cart and produce a receipt",
                "tags": ["orders"],
                "responses": {
                    "200": {"description": "receipt"},
                    "400": {"description": "empty cart"},
                    "409": {"description": "missing prescription"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pharmacy POS API",
	Description:      "Point-of-sale API for a small pharmacy: catalog, cart, prescriptions and receipts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
