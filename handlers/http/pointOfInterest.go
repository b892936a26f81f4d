package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"positioning-server/entities"
	"positioning-server/repositories"
	"positioning-server/validation"
)

type PointOfInterestHandler struct {
	pois repositories.PointOfInterestRepository
}

func NewPointOfInterestHandler(pois repositories.PointOfInterestRepository) *PointOfInterestHandler {
	return &PointOfInterestHandler{pois: pois}
}

var poiRules = validation.Rules{
	validation.Field("name").Required(),
	validation.Field("description").Optional(),
	validation.Field("coordinates").Required().Object(
		validation.Field("x").Required().Int(),
		validation.Field("y").Required().Int(),
	),
	validation.Field("radius").Required().Numeric(),
}

// GetAllPointsOfInterest handles GET /api/v1/points-of-interest
func (h *PointOfInterestHandler) GetAllPointsOfInterest(c *gin.Context) {
	pois, err := h.pois.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pois)
}

// GetPointOfInterest handles GET /api/v1/points-of-interest/:id
// An unknown id yields an empty array, not a 404.
func (h *PointOfInterestHandler) GetPointOfInterest(c *gin.Context) {
	pois, err := h.pois.GetByKey(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pois)
}

// CreatePointOfInterest handles POST /api/v1/points-of-interest
// The id is store-assigned, so creation cannot conflict.
func (h *PointOfInterestHandler) CreatePointOfInterest(c *gin.Context) {
	var poi entities.PointOfInterest
	if !bindValidated(c, poiRules, &poi) {
		return
	}

	if err := h.pois.Create(&poi); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, poi)
}

// UpsertPointOfInterest handles PUT /api/v1/points-of-interest/:id
func (h *PointOfInterestHandler) UpsertPointOfInterest(c *gin.Context) {
	var poi entities.PointOfInterest
	if !bindValidated(c, poiRules, &poi) {
		return
	}
	poi.ID = c.Param("id")

	existed, err := h.pois.Upsert(&poi)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existed {
		c.JSON(http.StatusOK, poi)
		return
	}
	c.JSON(http.StatusCreated, poi)
}

// DeleteAllPointsOfInterest handles DELETE /api/v1/points-of-interest
func (h *PointOfInterestHandler) DeleteAllPointsOfInterest(c *gin.Context) {
	if err := h.pois.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePointOfInterest handles DELETE /api/v1/points-of-interest/:id
func (h *PointOfInterestHandler) DeletePointOfInterest(c *gin.Context) {
	if err := h.pois.DeleteByKey(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
