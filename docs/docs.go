// Package docs holds the swagger spec registered at startup.
// Regenerate with: swag init -g cmd/planner/main.go -o docs
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
        "/api/v1/scenarios": {
            "get": {
                "tags": ["scenarios"],
                "summary": "List demand scenarios",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["scenarios"],
                "summary": "Create a demand scenario",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/scenarios/{id}": {
            "get": {
                "tags": ["scenarios"],
                "summary": "Get a demand scenario",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["scenarios"],
                "summary": "Update a demand scenario",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["scenarios"],
                "summary": "Delete a demand scenario",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/scenarios/{id}/run": {
            "post": {
                "tags": ["runs"],
                "summary": "Run a lifecycle simulation for a scenario",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/scenarios/{id}/latest-run": {
            "get": {
                "tags": ["runs"],
                "summary": "Latest finished run for a scenario",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs": {
            "get": {
                "tags": ["runs"],
                "summary": "List simulation runs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs/{run_id}": {
            "get": {
                "tags": ["runs"],
                "summary": "Get a simulation run",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs/{run_id}/elements": {
            "get": {
                "tags": ["runs"],
                "summary": "List elements built by a run",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs/{run_id}/cashflow": {
            "get": {
                "tags": ["runs"],
                "summary": "List yearly cash flows for a run",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs/{run_id}/timeline": {
            "get": {
                "tags": ["runs"],
                "summary": "Per-kind element timeline for a run",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs/{run_id}/stream": {
            "get": {
                "tags": ["runs"],
                "summary": "Stream run progress over a websocket",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Port Planner API",
	Description:      "Demand scenarios, terminal investment simulation runs, and cash-flow reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
