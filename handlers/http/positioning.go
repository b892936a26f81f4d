package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"positioning-server/entities"
	"positioning-server/repositories"
	"positioning-server/validation"
)

// PositioningHandler persists the outputs of the positioning algorithm:
// predicted coordinates and processing checkpoints. Both live in a single
// global partition with no per-key scoping.
type PositioningHandler struct {
	predictions repositories.PredictionRepository
	checkpoints repositories.CheckpointRepository
}

func NewPositioningHandler(predictions repositories.PredictionRepository, checkpoints repositories.CheckpointRepository) *PositioningHandler {
	return &PositioningHandler{
		predictions: predictions,
		checkpoints: checkpoints,
	}
}

var predictionRules = validation.Rules{
	validation.Field("timestamp").Required().Int(),
	validation.Field("x").Required().Decimal(),
	validation.Field("y").Required().Decimal(),
	validation.Field("confidence").Required().Decimal(),
}

var checkpointRules = validation.Rules{
	validation.Field("timestamp").Required().Int(),
	validation.Field("checkpoint").Required().Int(),
}

// GetAllPredictions handles GET /api/v1/positioning
func (h *PositioningHandler) GetAllPredictions(c *gin.Context) {
	rows, err := h.predictions.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreatePrediction handles POST /api/v1/positioning
func (h *PositioningHandler) CreatePrediction(c *gin.Context) {
	var p entities.PredictedCoordinate
	if !bindValidated(c, predictionRules, &p) {
		return
	}

	if err := h.predictions.Insert(&p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// DeleteAllPredictions handles DELETE /api/v1/positioning
func (h *PositioningHandler) DeleteAllPredictions(c *gin.Context) {
	if err := h.predictions.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAllCheckpoints handles GET /api/v1/positioning/checkpoints
func (h *PositioningHandler) GetAllCheckpoints(c *gin.Context) {
	rows, err := h.checkpoints.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateCheckpoint handles POST /api/v1/positioning/checkpoints
func (h *PositioningHandler) CreateCheckpoint(c *gin.Context) {
	var cp entities.Checkpoint
	if !bindValidated(c, checkpointRules, &cp) {
		return
	}

	if err := h.checkpoints.Insert(&cp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cp)
}

// DeleteAllCheckpoints handles DELETE /api/v1/positioning/checkpoints
func (h *PositioningHandler) DeleteAllCheckpoints(c *gin.Context) {
	if err := h.checkpoints.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
