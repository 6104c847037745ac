package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/boutique-jeux/boutique-api/internal/game"
	"github.com/gin-gonic/gin"
)

const (
	gameNotFound = "Jeu vidéo non trouvé"
	gameDeleted  = "Jeu vidéo supprimé avec succès"
)

// RegisterGameRoutes binds the five game CRUD routes under /api.
// POST and PUT accept JSON as well as multipart form submissions: field parts
// are bound into the body, file parts are accepted and discarded.
func RegisterGameRoutes(r gin.IRouter, svc *game.Service) {
	api := r.Group("/api")

	api.GET("/games", func(c *gin.Context) {
		games, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, games)
	})

	api.GET("/games/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			// a non-numeric id fails the store-side numeric cast, so it
			// surfaces as a server error rather than a 404
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		g, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, game.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": gameNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, g)
	})

	api.POST("/games", func(c *gin.Context) {
		var g game.Game
		if err := c.ShouldBind(&g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Create(c.Request.Context(), &g); err != nil {
			// duplicate business id lands here too, unclassified
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, g)
	})

	api.PUT("/games/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var u game.Update
		if err := c.ShouldBind(&u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		g, err := svc.Update(c.Request.Context(), id, &u)
		if err != nil {
			if errors.Is(err, game.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": gameNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, g)
	})

	api.DELETE("/games/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, game.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": gameNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": gameDeleted})
	})
}
