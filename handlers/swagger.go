package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>boutique-jeux — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the CRUD and operational endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "boutique-jeux", "version": "v1.0.0" },
  "paths": {
    "/api/games": {
      "get": { "summary": "Liste des jeux vidéo", "responses": { "200": { "description": "liste des jeux" }, "500": { "description": "erreur serveur" } } },
      "post": { "summary": "Créer un jeu vidéo", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"id":{"type":"integer"},"title":{"type":"string"},"editor":{"type":"string"},"platforms":{"type":"array","items":{"type":"string"}},"quantity":{"type":"integer"}}}}}}, "responses": { "201": { "description": "jeu créé" }, "500": { "description": "erreur serveur (id dupliqué inclus)" } } }
    },
    "/api/games/{id}": {
      "get": { "summary": "Obtenir un jeu vidéo par son ID", "responses": { "200": { "description": "jeu" }, "404": { "description": "jeu non trouvé" } } },
      "put": { "summary": "Mettre à jour un jeu vidéo (fusion partielle)", "responses": { "200": { "description": "jeu mis à jour" }, "404": { "description": "jeu non trouvé" } } },
      "delete": { "summary": "Supprimer un jeu vidéo", "responses": { "200": { "description": "jeu supprimé" }, "404": { "description": "jeu non trouvé" } } }
    },
    "/api/customers": {
      "get": { "summary": "Liste des comptes clients", "responses": { "200": { "description": "liste des clients" }, "500": { "description": "erreur serveur" } } },
      "post": { "summary": "Créer un compte client", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"id":{"type":"integer"},"name":{"type":"string"},"firstName":{"type":"string"},"dateOfBirth":{"type":"string"},"address":{"type":"string"},"phoneNumber":{"type":"string"},"points":{"type":"integer"}}}}}}, "responses": { "201": { "description": "client créé" }, "500": { "description": "erreur serveur (id dupliqué inclus)" } } }
    },
    "/api/customers/{id}": {
      "get": { "summary": "Obtenir un compte client par son ID", "responses": { "200": { "description": "client" }, "404": { "description": "client non trouvé" } } },
      "put": { "summary": "Mettre à jour un compte client (fusion partielle)", "responses": { "200": { "description": "client mis à jour" }, "404": { "description": "client non trouvé" } } },
      "delete": { "summary": "Supprimer un compte client", "responses": { "200": { "description": "client supprimé" }, "404": { "description": "client non trouvé" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics exposition" } } } }
  }
}`
