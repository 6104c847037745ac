package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/boutique-jeux/boutique-api/internal/customer"
	"github.com/gin-gonic/gin"
)

const (
	customerNotFound = "Compte client non trouvé"
	customerDeleted  = "Compte client supprimé avec succès"
)

// RegisterCustomerRoutes binds the five customer-account CRUD routes under
// /api, with the same body handling as the game routes.
func RegisterCustomerRoutes(r gin.IRouter, svc *customer.Service) {
	api := r.Group("/api")

	api.GET("/customers", func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customers)
	})

	api.GET("/customers/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cust, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": customerNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	})

	api.POST("/customers", func(c *gin.Context) {
		var cust customer.Customer
		if err := c.ShouldBind(&cust); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Create(c.Request.Context(), &cust); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cust)
	})

	api.PUT("/customers/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var u customer.Update
		if err := c.ShouldBind(&u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cust, err := svc.Update(c.Request.Context(), id, &u)
		if err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": customerNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	})

	api.DELETE("/customers/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": customerNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": customerDeleted})
	})
}
