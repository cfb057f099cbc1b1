// Package docs registers the Swagger description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "summary": "Service identity and database reachability",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "summary": "Readiness probe, fails when the database is unreachable",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/team": {
            "get": {
                "tags": ["team"],
                "summary": "List team members, newest upload first",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/team/upload": {
            "post": {
                "tags": ["team"],
                "summary": "Create a team member with a mandatory image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "name", "in": "formData", "type": "string", "required": true},
                    {"name": "role", "in": "formData", "type": "string"},
                    {"name": "position", "in": "formData", "type": "string"},
                    {"name": "team", "in": "formData", "type": "string"},
                    {"name": "information", "in": "formData", "type": "string"},
                    {"name": "email", "in": "formData", "type": "string"},
                    {"name": "phone", "in": "formData", "type": "string"},
                    {"name": "image", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/team/{id}": {
            "get": {
                "tags": ["team"],
                "summary": "Fetch a team member",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Team member not found"}
                }
            },
            "put": {
                "tags": ["team"],
                "summary": "Partially update a team member",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Team member not found"}
                }
            },
            "delete": {
                "tags": ["team"],
                "summary": "Delete a team member and its image",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Team member not found"}
                }
            }
        },
        "/news": {
            "get": {
                "tags": ["news"],
                "summary": "List news, newest date first",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/news/upload": {
            "post": {
                "tags": ["news"],
                "summary": "Create a news post with an optional image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "title", "in": "formData", "type": "string", "required": true},
                    {"name": "newsDate", "in": "formData", "type": "string", "required": true},
                    {"name": "content", "in": "formData", "type": "string", "required": true},
                    {"name": "image", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/news/{id}": {
            "get": {
                "tags": ["news"],
                "summary": "Fetch a news post",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "News not found"}
                }
            },
            "put": {
                "tags": ["news"],
                "summary": "Partially update a news post",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "News not found"}
                }
            },
            "delete": {
                "tags": ["news"],
                "summary": "Delete a news post and its image",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "News not found"}
                }
            }
        },
        "/portfolio": {
            "get": {
                "tags": ["portfolio"],
                "summary": "List portfolio companies, newest investment first",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["portfolio"],
                "summary": "Create a portfolio company with an optional logo",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "companyName", "in": "formData", "type": "string", "required": true},
                    {"name": "description", "in": "formData", "type": "string", "required": true},
                    {"name": "industry", "in": "formData", "type": "string", "required": true},
                    {"name": "initialInvestment", "in": "formData", "type": "string", "required": true},
                    {"name": "headquarters", "in": "formData", "type": "string", "required": true},
                    {"name": "acquisitions", "in": "formData", "type": "string", "required": true},
                    {"name": "status", "in": "formData", "type": "string", "required": true},
                    {"name": "fund", "in": "formData", "type": "string", "required": true},
                    {"name": "logo", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/portfolio/{id}": {
            "get": {
                "tags": ["portfolio"],
                "summary": "Fetch a portfolio company",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Portfolio company not found"}
                }
            },
            "put": {
                "tags": ["portfolio"],
                "summary": "Partially update a portfolio company",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Portfolio company not found"}
                }
            },
            "delete": {
                "tags": ["portfolio"],
                "summary": "Delete a portfolio company and its logo",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Portfolio company not found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Greenhall Capital Backend API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
