// Package handler contains HTTP handlers for the API.
package handler

import (
	"ecommerce-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseIDParam parses an ObjectID path parameter, writing a 400 response on
// failure.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" parameter")
		return primitive.NilObjectID, false
	}
	return id, true
}
