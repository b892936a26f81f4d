package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"positioning-server/entities"
	"positioning-server/validation"
)

var measurementRules = validation.Rules{
	validation.Field("timestamp").Required().Int(),
	validation.Field("rssi").Required().Int(),
	validation.Field("distance").Required().Decimal(),
	validation.Field("channel").Required().Int(),
}

// GetAllMeasurements handles GET /api/v1/beacons/rssi — every partition,
// ascending time order.
func (h *BeaconHandler) GetAllMeasurements(c *gin.Context) {
	rows, err := h.measurements.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetBeaconMeasurements handles GET /api/v1/beacons/:address/rssi
func (h *BeaconHandler) GetBeaconMeasurements(c *gin.Context) {
	rows, err := h.measurements.ListByPartition(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateMeasurement handles POST /api/v1/beacons/:address/rssi
// The address references a beacon by value only; no existence check.
func (h *BeaconHandler) CreateMeasurement(c *gin.Context) {
	var m entities.Measurement
	if !bindValidated(c, measurementRules, &m) {
		return
	}
	m.BeaconAddress = c.Param("address")

	if err := h.measurements.Insert(&m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// DeleteAllMeasurements handles DELETE /api/v1/beacons/rssi
func (h *BeaconHandler) DeleteAllMeasurements(c *gin.Context) {
	if err := h.measurements.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBeaconMeasurements handles DELETE /api/v1/beacons/:address/rssi —
// idempotent, scoped to the address partition.
func (h *BeaconHandler) DeleteBeaconMeasurements(c *gin.Context) {
	if err := h.measurements.DeleteByPartition(c.Param("address")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
