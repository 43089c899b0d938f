package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Accounts Service API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Accounts Service API",
    "version": "1.0.0"
  },
  "paths": {
    "/accounts": {
      "post": {
        "summary": "Create account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["customerId", "accountType"],
                "properties": {
                  "customerId": {"type": "string"},
                  "accountType": {"type": "string", "enum": ["SAVINGS", "CHECKING"]},
                  "accountNumber": {"type": "string"},
                  "balance": {"type": "string", "example": "1000.00"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation failed or customer not found"},
          "409": {"description": "Account number already exists"}
        }
      },
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": {"description": "All accounts"}
        }
      }
    },
    "/accounts/{accountId}": {
      "get": {
        "summary": "Get account by id",
        "parameters": [{"name": "accountId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"description": "Account"},
          "404": {"description": "Account not found"}
        }
      },
      "delete": {
        "summary": "Delete account",
        "parameters": [{"name": "accountId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"description": "Deleted account snapshot"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountId}/deposit": {
      "put": {
        "summary": "Deposit funds",
        "parameters": [{"name": "accountId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount"],
                "properties": {"amount": {"type": "string", "example": "250.00"}}
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Updated account"},
          "400": {"description": "Invalid amount"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountId}/withdrawal": {
      "put": {
        "summary": "Withdraw funds",
        "parameters": [{"name": "accountId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount"],
                "properties": {"amount": {"type": "string", "example": "100.00"}}
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Updated account"},
          "400": {"description": "Invalid amount or policy violation"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountId}/balance": {
      "put": {
        "summary": "Administrative balance overwrite",
        "security": [{"basicAuth": []}],
        "parameters": [{"name": "accountId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["balance"],
                "properties": {"balance": {"type": "string", "example": "-250.00"}}
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Updated account"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/customer/{customerId}": {
      "get": {
        "summary": "Check whether a customer has accounts",
        "parameters": [{"name": "customerId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"description": "Existence flag"}
        }
      }
    },
    "/accounts/customer/{customerId}/active": {
      "get": {
        "summary": "Check whether a customer has active accounts",
        "parameters": [{"name": "customerId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"description": "Existence flag"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "basicAuth": {"type": "http", "scheme": "basic"}
    }
  }
}`
